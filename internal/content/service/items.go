package service

import (
	"fmt"

	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// SetField updates one editable scalar, cleaned according to its declared
// kind. Paths outside the field table are rejected.
func (s *Service) SetField(path, value string) error {
	kind, ok := scalarFields[path]
	if !ok {
		return apperrors.InvalidInput(fmt.Sprintf("field %q is not editable", path))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}
	if err := s.working.Set(path, sanitizeValue(kind, value)); err != nil {
		return apperrors.Internal("failed to update field", err)
	}

	s.activity.Record("Updated %s", path)
	return nil
}

// AddItem appends a freshly seeded element to one of the item lists and
// returns it, id included, so the client can render it immediately.
func (s *Service) AddItem(listPath string) (map[string]any, error) {
	seed, ok := itemDefaults[listPath]
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown item list %q", listPath))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return nil, contenterrors.ErrNoSession
	}

	item := seed()
	item["id"] = model.NewItemID()

	arr, _ := s.working.Array(listPath)
	if err := s.working.Set(listPath, append(arr, item)); err != nil {
		return nil, apperrors.Internal("failed to append item", err)
	}

	s.activity.Record("Added item to %s", listPath)
	return item, nil
}

// UpdateItem edits one field of a list element. An unknown id is a logged
// no-op rather than an error: the element was removed in this session and
// the client is editing a stale view.
func (s *Service) UpdateItem(listPath, id, field, value string) error {
	fields, ok := itemFields[listPath]
	if !ok {
		return apperrors.InvalidInput(fmt.Sprintf("unknown item list %q", listPath))
	}
	kind, ok := fields[field]
	if !ok {
		return apperrors.InvalidInput(fmt.Sprintf("field %q is not editable on %s", field, listPath))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}

	arr, _ := s.working.Array(listPath)
	item, idx := findItem(arr, id)
	if idx < 0 {
		s.log.Warn("Ignoring edit to unknown item", "list", listPath, "id", id)
		return nil
	}

	item[field] = sanitizeValue(kind, value)
	s.activity.Record("Updated item in %s", listPath)
	return nil
}

// RemoveItem deletes a list element by id.
func (s *Service) RemoveItem(listPath, id string) error {
	if _, ok := itemFields[listPath]; !ok {
		return apperrors.InvalidInput(fmt.Sprintf("unknown item list %q", listPath))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}

	arr, _ := s.working.Array(listPath)
	_, idx := findItem(arr, id)
	if idx < 0 {
		return apperrors.NotFoundWithID("item", id)
	}

	filtered := append(append([]any{}, arr[:idx]...), arr[idx+1:]...)
	if err := s.working.Set(listPath, filtered); err != nil {
		return apperrors.Internal("failed to remove item", err)
	}

	s.activity.Record("Removed item from %s", listPath)
	return nil
}

// ReorderItem moves an element by delta positions, clamped at the list
// ends. The list keeps exactly the same elements in a new order.
func (s *Service) ReorderItem(listPath, id string, delta int) error {
	if _, ok := itemFields[listPath]; !ok {
		return apperrors.InvalidInput(fmt.Sprintf("unknown item list %q", listPath))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}

	arr, _ := s.working.Array(listPath)
	_, idx := findItem(arr, id)
	if idx < 0 {
		return apperrors.NotFoundWithID("item", id)
	}

	target := idx + delta
	if target < 0 {
		target = 0
	}
	if target > len(arr)-1 {
		target = len(arr) - 1
	}
	if target == idx {
		return nil
	}

	reordered := make([]any, 0, len(arr))
	reordered = append(reordered, arr[:idx]...)
	reordered = append(reordered, arr[idx+1:]...)
	reordered = append(reordered[:target], append([]any{arr[idx]}, reordered[target:]...)...)

	if err := s.working.Set(listPath, reordered); err != nil {
		return apperrors.Internal("failed to reorder item", err)
	}
	s.activity.Record("Reordered item in %s", listPath)
	return nil
}

func findItem(arr []any, id string) (map[string]any, int) {
	for i, raw := range arr {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if itemID, _ := item["id"].(string); itemID == id {
			return item, i
		}
	}
	return nil, -1
}
