package projector

import (
	"html/template"
	"strings"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// List markup is produced server-side with html/template so every item
// field is escaped before it reaches a page.
var (
	amenitiesTmpl = template.Must(template.New("amenities").Parse(
		`{{range .}}<li class="amenity" data-id="{{.id}}" title="{{.tooltip}}"><span class="amenity-icon">{{.icon}}</span><span class="amenity-title">{{.title}}</span></li>
{{end}}`))

	reviewsTmpl = template.Must(template.New("reviews").Parse(
		`{{range .}}<blockquote class="review" data-id="{{.id}}"><p>{{.text}}</p><cite>{{.author}}</cite></blockquote>
{{end}}`))

	galleryTmpl = template.Must(template.New("gallery").Parse(
		`{{range .}}<figure class="gallery-item" data-id="{{.id}}"><img src="{{.src}}" alt="{{.caption}}"><figcaption>{{.caption}}</figcaption></figure>
{{end}}`))

	slideshowTmpl = template.Must(template.New("slideshow").Parse(
		`{{range .}}<img class="slide" data-id="{{.id}}" src="{{.src}}" alt="">
{{end}}`))
)

type listRenderer struct {
	path   string
	target string
	tmpl   *template.Template
}

var listRenderers = []listRenderer{
	{path: model.PathAmenityItems, target: "amenities-list", tmpl: amenitiesTmpl},
	{path: model.PathReviews, target: "reviews-list", tmpl: reviewsTmpl},
	{path: model.PathGallery, target: "gallery-grid", tmpl: galleryTmpl},
	{path: model.PathSlideshow, target: "hero-slideshow", tmpl: slideshowTmpl},
}

func (l listRenderer) render(items []any) (string, error) {
	prepared := make([]map[string]any, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		copied := make(map[string]any, len(item))
		for k, v := range item {
			copied[k] = v
		}
		// Embedded images are data: URIs, which the template URL filter
		// would reject. Sources only enter the document through the
		// sanitizer and the upload endpoint, so they are trusted here.
		if src, ok := copied["src"].(string); ok {
			copied["src"] = template.URL(src)
		}
		prepared = append(prepared, copied)
	}

	var sb strings.Builder
	if err := l.tmpl.Execute(&sb, prepared); err != nil {
		return "", err
	}
	return sb.String(), nil
}
