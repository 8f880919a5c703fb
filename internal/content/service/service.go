// Package service owns the editing session: one working copy of the content
// document, one snapshot of the last persisted state, and every operation
// the admin surface performs between load and save.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/activity"
	bookingvalidator "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/validator"
	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/events"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/normalizer"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/store"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// Save guard tuning. The shrink check only arms once the snapshot had more
// than guardMinItems entries, so trimming a short list never nags.
const guardMinItems = 4

// SaveResult reports where the document landed and carries the serialized
// artifact so the client can offer it as a download.
type SaveResult struct {
	Outcome  store.SaveOutcome `json:"outcome"`
	Warnings []string          `json:"warnings,omitempty"`
	Artifact []byte            `json:"-"`
}

// Editor is the editing surface the HTTP layer drives.
type Editor interface {
	Load(ctx context.Context) error
	Document() (model.Document, error)
	Sections() (map[string]any, []string, error)
	SetField(path, value string) error
	AddItem(listPath string) (map[string]any, error)
	UpdateItem(listPath, id, field, value string) error
	RemoveItem(listPath, id string) error
	ReorderItem(listPath, id string, delta int) error
	AddBooking(ctx context.Context, b model.BookingRange) (model.BookingRange, error)
	RemoveBooking(ctx context.Context, id int64) error
	Save(ctx context.Context, confirm bool) (SaveResult, error)
	Discard() error
	Export() (filename string, data []byte, err error)
	Import(raw model.Document) error
}

type Service struct {
	store     store.Store
	validator *bookingvalidator.BookingValidator
	events    *events.Publisher
	activity  *activity.Log
	log       *logger.Logger

	mu       sync.Mutex
	working  model.Document
	snapshot model.Document
}

var _ Editor = (*Service)(nil)

func NewService(st store.Store, v *bookingvalidator.BookingValidator, ev *events.Publisher, trail *activity.Log, log *logger.Logger) *Service {
	return &Service{
		store:     st,
		validator: v,
		events:    ev,
		activity:  trail,
		log:       log,
	}
}

// Load pulls the document from the store, normalizes it, and opens the
// session. A missing or empty store is not fatal: editing starts from a
// blank normalized document.
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) || errors.Is(err, contenterrors.ErrEmptyDocument) {
			s.log.Warn("No stored content found, starting from an empty document", "error", err)
			raw = model.Document{}
		} else {
			return fmt.Errorf("load content: %w", err)
		}
	}

	doc := normalizer.Normalize(raw)
	snapshot, err := doc.DeepCopy()
	if err != nil {
		return fmt.Errorf("snapshot content: %w", err)
	}

	s.mu.Lock()
	s.working = doc
	s.snapshot = snapshot
	s.mu.Unlock()

	s.events.Publish(ctx, events.EventContentLoaded, nil)
	s.log.Info("Content session opened", "sections", len(model.Sections()))
	return nil
}

// Document returns an isolated copy of the working document.
func (s *Service) Document() (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return nil, contenterrors.ErrNoSession
	}
	return s.working.DeepCopy()
}

// Sections builds the public projection section by section. Each section is
// copied in isolation so one corrupt subtree degrades the response instead
// of failing it; the names of any skipped sections come back alongside.
func (s *Service) Sections() (map[string]any, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return nil, nil, contenterrors.ErrNoSession
	}

	out := make(map[string]any, len(model.Sections()))
	var failed []string
	for _, name := range model.Sections() {
		section, ok := s.working[name]
		if !ok {
			continue
		}
		copied, err := copySection(section)
		if err != nil {
			s.log.Error("Skipping unserializable section", "section", name, "error", err)
			failed = append(failed, name)
			continue
		}
		out[name] = copied
	}
	return out, failed, nil
}

func copySection(section any) (any, error) {
	data, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	var copied any
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	return copied, nil
}

// Save persists the working copy. Destructive shrinkage of user content is
// refused unless the caller confirms: an emptied list, or a list losing
// more than half its entries when the snapshot held more than a handful.
func (s *Service) Save(ctx context.Context, confirm bool) (SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return SaveResult{}, contenterrors.ErrNoSession
	}

	warnings := s.shrinkWarnings()
	if len(warnings) > 0 && !confirm {
		return SaveResult{}, apperrors.ConfirmationRequired(
			"Saving would remove a large amount of content", warnings)
	}

	outcome, err := s.store.Save(ctx, s.working)
	if err != nil {
		return SaveResult{}, fmt.Errorf("save content: %w", err)
	}

	artifact, err := json.MarshalIndent(s.working, "", "  ")
	if err != nil {
		return SaveResult{}, fmt.Errorf("serialize saved content: %w", err)
	}

	snapshot, err := s.working.DeepCopy()
	if err != nil {
		return SaveResult{}, fmt.Errorf("refresh snapshot: %w", err)
	}
	s.snapshot = snapshot

	s.events.Publish(ctx, events.EventContentSaved, map[string]any{"outcome": outcome})
	s.activity.Record("Saved content (%s)", outcome)
	s.log.Info("Content saved", "outcome", outcome, "confirmed", confirm)

	return SaveResult{Outcome: outcome, Warnings: warnings, Artifact: artifact}, nil
}

// shrinkWarnings compares working against snapshot over the guarded lists.
// Caller holds the lock.
func (s *Service) shrinkWarnings() []string {
	var warnings []string
	for _, path := range model.UserContentPaths() {
		before := listLen(s.snapshot, path)
		after := listLen(s.working, path)

		switch {
		case after == 0 && before > 0:
			warnings = append(warnings, fmt.Sprintf("%s will be emptied (had %d items)", path, before))
		case before > guardMinItems && after*2 < before:
			warnings = append(warnings, fmt.Sprintf("%s shrinks from %d to %d items", path, before, after))
		}
	}
	return warnings
}

func listLen(doc model.Document, path string) int {
	arr, _ := doc.Array(path)
	return len(arr)
}

// Discard throws away unsaved edits, restoring the last persisted state.
func (s *Service) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return contenterrors.ErrNoSession
	}
	restored, err := s.snapshot.DeepCopy()
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.working = restored

	s.activity.Record("Discarded unsaved changes")
	s.log.Info("Unsaved changes discarded")
	return nil
}

// Export serializes the working copy as a dated backup artifact.
func (s *Service) Export() (filename string, data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return "", nil, contenterrors.ErrNoSession
	}
	data, err = json.MarshalIndent(s.working, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("serialize backup: %w", err)
	}

	filename = fmt.Sprintf("website-content-backup-%s.json", time.Now().Format("2006-01-02"))
	s.activity.Record("Exported backup %s", filename)
	return filename, data, nil
}

// Import replaces the working copy with an uploaded backup. The snapshot is
// left alone: a restore only becomes permanent through an explicit save,
// which also re-arms the shrink guard against a bad backup.
func (s *Service) Import(raw model.Document) error {
	if _, ok := raw[model.SectionHero].(map[string]any); !ok {
		return apperrors.Validation("backup file is missing the hero section", nil)
	}
	if _, ok := raw[model.SectionVenue].(map[string]any); !ok {
		return apperrors.Validation("backup file is missing the venue section", nil)
	}

	doc := normalizer.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}
	s.working = doc

	s.activity.Record("Restored content from backup")
	s.log.Info("Content restored from backup")
	return nil
}
