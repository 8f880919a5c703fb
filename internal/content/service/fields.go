package service

import (
	"strings"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/sanitizer"
)

// FieldKind declares how an editable value is cleaned before it lands in
// the document. The kind lives in this table, never in the request, so a
// caller cannot smuggle an unsanitized value through by lying about it.
type FieldKind string

const (
	KindText      FieldKind = "text"
	KindMultiline FieldKind = "multiline"
	KindLink      FieldKind = "link"
	KindImage     FieldKind = "image"
)

// scalarFields is the full set of editable top-level fields, keyed by
// dotted document path. Paths absent from this table are not editable
// through the field endpoint.
var scalarFields = map[string]FieldKind{
	"hero.title":    KindText,
	"hero.subtitle": KindText,
	"hero.ctaText":  KindText,
	"hero.ctaLink":  KindLink,

	"venue.title":       KindText,
	"venue.description": KindMultiline,
	"venue.capacity":    KindText,
	"venue.address":     KindMultiline,
	"venue.mapLink":     KindLink,
	"venue.image":       KindImage,

	"contact.phone":    KindText,
	"contact.email":    KindText,
	"contact.address":  KindMultiline,
	"contact.whatsapp": KindLink,

	"footer.text":      KindText,
	"footer.facebook":  KindLink,
	"footer.instagram": KindLink,
}

// itemFields declares the editable fields of each item list, per list.
var itemFields = map[string]map[string]FieldKind{
	model.PathAmenityItems: {
		"title":   KindText,
		"tooltip": KindText,
		"icon":    KindText,
	},
	model.PathReviews: {
		"text":   KindMultiline,
		"author": KindText,
	},
	model.PathGallery: {
		"src":     KindImage,
		"caption": KindText,
	},
	model.PathSlideshow: {
		"src": KindImage,
	},
}

const placeholderImage = "https://placehold.co/600x400?text=New+Image"

// itemDefaults builds the seed element appended by AddItem. The id is
// assigned by the caller.
var itemDefaults = map[string]func() map[string]any{
	model.PathAmenityItems: func() map[string]any {
		return map[string]any{"title": "New Amenity", "tooltip": "", "icon": ""}
	},
	model.PathReviews: func() map[string]any {
		return map[string]any{"text": "New review...", "author": "Event · Year"}
	},
	model.PathGallery: func() map[string]any {
		return map[string]any{"src": placeholderImage, "caption": "New Image"}
	},
	model.PathSlideshow: func() map[string]any {
		return map[string]any{"src": ""}
	},
}

func sanitizeValue(kind FieldKind, value string) string {
	switch kind {
	case KindText:
		return sanitizer.NormalizeText(value)
	case KindMultiline:
		return sanitizer.NormalizeMultiline(value)
	case KindLink:
		return sanitizer.NormalizeLink(value)
	case KindImage:
		// Data URIs and upload artifacts pass through untouched.
		return strings.TrimSpace(value)
	default:
		return value
	}
}
