package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is the full JSON content tree backing the site. It stays a plain
// map so unknown fields written by older editors survive a load/save cycle
// untouched; typed accessors cover the places the code actually reasons
// about.
type Document map[string]any

// Fixed top-level sections. Consumers must tolerate any of these being
// absent in a persisted document; the normalizer fills them in.
const (
	SectionHero        = "hero"
	SectionVenue       = "venue"
	SectionAmenities   = "amenities"
	SectionExperiences = "experiences"
	SectionContact     = "contact"
	SectionFooter      = "footer"
	SectionBookings    = "bookings"
)

func Sections() []string {
	return []string{
		SectionHero,
		SectionVenue,
		SectionAmenities,
		SectionExperiences,
		SectionContact,
		SectionFooter,
		SectionBookings,
	}
}

const (
	PathAmenityItems = "amenities.items"
	PathReviews      = "experiences.reviews"
	PathGallery      = "experiences.gallery"
	PathSlideshow    = "hero.slideshow"
	PathBookedDates  = "bookings.bookedDates"
)

// ItemArrayPaths lists every ordered Item sequence in the document.
func ItemArrayPaths() []string {
	return []string{PathAmenityItems, PathReviews, PathGallery, PathSlideshow}
}

// UserContentPaths lists the arrays covered by the pre-save safety guard.
func UserContentPaths() []string {
	return []string{PathAmenityItems, PathReviews, PathGallery}
}

// Get resolves a dotted path. The second return is false when any segment
// is missing or a non-map value sits in the middle of the path.
func (d Document) Get(path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = map[string]any(d)
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set writes a leaf value, creating intermediate mappings along the path.
// It fails if an intermediate segment already holds a non-map value.
func (d Document) Set(path string, value any) error {
	parts := strings.Split(path, ".")
	m := map[string]any(d)
	for i, part := range parts[:len(parts)-1] {
		next, ok := m[part]
		if !ok {
			child := map[string]any{}
			m[part] = child
			m = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("path %q: segment %q is not a mapping", path, strings.Join(parts[:i+1], "."))
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
	return nil
}

// GetString resolves a dotted path to a string, returning "" for missing or
// non-string values.
func (d Document) GetString(path string) string {
	v, ok := d.Get(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Array resolves a dotted path to an ordered sequence.
func (d Document) Array(path string) ([]any, bool) {
	v, ok := d.Get(path)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// DeepCopy clones the document through a JSON round trip. Documents
// originate from JSON, so the round trip is lossless.
func (d Document) DeepCopy() (Document, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("deep copy marshal: %w", err)
	}
	var copied Document
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, fmt.Errorf("deep copy unmarshal: %w", err)
	}
	return copied, nil
}

// NewItemID builds an item identifier from a millisecond timestamp prefix
// and a random suffix. Collision-resistant within an editing session; no
// cross-session guarantee is needed because ids are assigned once and never
// reassigned.
func NewItemID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
