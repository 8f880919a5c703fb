// Package projector maps document paths onto render targets. Every binding
// declares the kind of mutation it performs, so text can never be injected
// as markup and image sources can never leak into link hrefs. The sink
// abstracts the render side; the server ships a map-backed sink and clients
// apply the same plan against the DOM.
package projector

import (
	"fmt"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type Kind string

const (
	KindText     Kind = "text"
	KindHTML     Kind = "html"
	KindImageSrc Kind = "imageSrc"
	KindLinkHref Kind = "linkHref"
)

// Binding ties one document path to one render target.
type Binding struct {
	Path   string `json:"path"`
	Target string `json:"target"`
	Kind   Kind   `json:"kind"`
}

// Sink receives projection output. Each method corresponds to one binding
// kind; ReplaceList takes pre-rendered markup for an item list.
type Sink interface {
	SetText(target, value string)
	SetHTML(target, markup string)
	SetImageSrc(target, src string)
	SetLinkHref(target, href string)
	ReplaceList(target, markup string)
}

// Project walks the bindings and applies every resolvable value to the
// sink. Missing or empty paths are skipped so a partially filled document
// leaves the target's fallback content alone. The returned count is the
// number of bindings applied.
func Project(doc model.Document, bindings []Binding, sink Sink) (int, error) {
	applied := 0
	for _, b := range bindings {
		value := doc.GetString(b.Path)
		if value == "" {
			continue
		}

		switch b.Kind {
		case KindText:
			sink.SetText(b.Target, value)
		case KindHTML:
			sink.SetHTML(b.Target, value)
		case KindImageSrc:
			sink.SetImageSrc(b.Target, value)
		case KindLinkHref:
			sink.SetLinkHref(b.Target, value)
		default:
			return applied, fmt.Errorf("binding %q: unknown kind %q", b.Path, b.Kind)
		}
		applied++
	}
	return applied, nil
}

// ProjectLists renders every item list and hands the markup to the sink.
func ProjectLists(doc model.Document, sink Sink) error {
	for _, list := range listRenderers {
		arr, _ := doc.Array(list.path)
		markup, err := list.render(arr)
		if err != nil {
			return fmt.Errorf("render %s: %w", list.path, err)
		}
		sink.ReplaceList(list.target, markup)
	}
	return nil
}
