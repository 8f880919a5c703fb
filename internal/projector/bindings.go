package projector

// DefaultBindings is the projection plan for the public site. Targets are
// the element ids the page templates expose.
func DefaultBindings() []Binding {
	return []Binding{
		{Path: "hero.title", Target: "hero-title", Kind: KindText},
		{Path: "hero.subtitle", Target: "hero-subtitle", Kind: KindText},
		{Path: "hero.ctaText", Target: "hero-cta", Kind: KindText},
		{Path: "hero.ctaLink", Target: "hero-cta", Kind: KindLinkHref},

		{Path: "venue.title", Target: "venue-title", Kind: KindText},
		{Path: "venue.description", Target: "venue-description", Kind: KindHTML},
		{Path: "venue.capacity", Target: "venue-capacity", Kind: KindText},
		{Path: "venue.address", Target: "venue-address", Kind: KindText},
		{Path: "venue.mapLink", Target: "venue-map", Kind: KindLinkHref},
		{Path: "venue.image", Target: "venue-image", Kind: KindImageSrc},

		{Path: "contact.phone", Target: "contact-phone", Kind: KindText},
		{Path: "contact.email", Target: "contact-email", Kind: KindText},
		{Path: "contact.address", Target: "contact-address", Kind: KindText},
		{Path: "contact.whatsapp", Target: "contact-whatsapp", Kind: KindLinkHref},

		{Path: "footer.text", Target: "footer-text", Kind: KindText},
		{Path: "footer.facebook", Target: "footer-facebook", Kind: KindLinkHref},
		{Path: "footer.instagram", Target: "footer-instagram", Kind: KindLinkHref},
	}
}
