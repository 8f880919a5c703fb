package sanitizer

import "strings"

// NormalizeLink tidies link and image-source values. Data URIs (embedded
// images) and explicitly schemed values pass through untouched; bare
// domains get https.
func NormalizeLink(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "data:") {
		return s
	}
	if strings.Contains(s, "://") || strings.HasPrefix(s, "tel:") || strings.HasPrefix(s, "mailto:") {
		return s
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		// Relative asset path, leave as-is.
		return s
	}
	return "https://" + s
}
