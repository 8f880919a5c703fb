package projector

// MapSink collects projection output keyed by target. The projection
// endpoint serializes it for clients that apply mutations themselves, and
// tests assert against it directly.
type MapSink struct {
	Text   map[string]string `json:"text,omitempty"`
	HTML   map[string]string `json:"html,omitempty"`
	Images map[string]string `json:"images,omitempty"`
	Links  map[string]string `json:"links,omitempty"`
	Lists  map[string]string `json:"lists,omitempty"`
}

func NewMapSink() *MapSink {
	return &MapSink{
		Text:   map[string]string{},
		HTML:   map[string]string{},
		Images: map[string]string{},
		Links:  map[string]string{},
		Lists:  map[string]string{},
	}
}

func (s *MapSink) SetText(target, value string)    { s.Text[target] = value }
func (s *MapSink) SetHTML(target, markup string)   { s.HTML[target] = markup }
func (s *MapSink) SetImageSrc(target, src string)  { s.Images[target] = src }
func (s *MapSink) SetLinkHref(target, href string) { s.Links[target] = href }
func (s *MapSink) ReplaceList(target, markup string) {
	s.Lists[target] = markup
}
