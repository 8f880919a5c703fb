// Package normalizer reconciles a raw loaded document with the shape the
// rest of the system assumes: every section present, every known array an
// actual array, every item carrying a stable id. Legacy documents written
// before ids existed pass through here exactly once and come out migrated.
package normalizer

import (
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// sectionArrays declares the ordered sequences each section owns. Sections
// without an entry default to an empty mapping.
var sectionArrays = map[string][]string{
	model.SectionHero:        {"slideshow"},
	model.SectionAmenities:   {"items"},
	model.SectionExperiences: {"reviews", "gallery"},
	model.SectionBookings:    {"bookedDates"},
}

// Normalize returns a normalized copy of raw. The input is never mutated.
// Idempotent: normalizing an already-normalized document changes nothing,
// and ids present in the input are never reassigned.
func Normalize(raw model.Document) model.Document {
	doc := model.Document{}
	if raw != nil {
		if copied, err := raw.DeepCopy(); err == nil {
			doc = copied
		}
	}

	for _, section := range model.Sections() {
		m, ok := doc[section].(map[string]any)
		if !ok {
			m = map[string]any{}
			doc[section] = m
		}
		for _, field := range sectionArrays[section] {
			if _, ok := m[field].([]any); !ok {
				m[field] = []any{}
			}
		}
	}

	for _, path := range model.ItemArrayPaths() {
		arr, _ := doc.Array(path)
		ensureItemIDs(arr)
	}

	normalizeBookedDates(doc)

	return doc
}

// ensureItemIDs assigns an id to every element missing one, in array order.
// Existing ids are left alone; elements that are not mappings are preserved
// as-is so a partially corrupt array does not lose data.
func ensureItemIDs(items []any) {
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := item["id"].(string); !ok || id == "" {
			item["id"] = model.NewItemID()
		}
	}
}

// normalizeBookedDates fills the single-day default (end = start) and
// assigns numeric ids to legacy entries that predate them.
func normalizeBookedDates(doc model.Document) {
	arr, _ := doc.Array(model.PathBookedDates)
	nextID := model.NewBookingID()
	for _, raw := range arr {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if end, ok := entry["end"].(string); !ok || end == "" {
			if start, ok := entry["start"].(string); ok {
				entry["end"] = start
			}
		}
		if !hasNumericID(entry) {
			entry["id"] = float64(nextID)
			nextID++
		}
	}
}

func hasNumericID(entry map[string]any) bool {
	switch id := entry["id"].(type) {
	case float64:
		return id != 0
	case int64:
		return id != 0
	case int:
		return id != 0
	default:
		return false
	}
}
