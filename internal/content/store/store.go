// Package store persists the content document. Two interchangeable
// backends exist: the flat JSON file the static site ships with, and a
// remote live database. FallbackStore composes them with the defined
// precedence.
package store

import (
	"context"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// SaveOutcome names the backend a save actually landed on. The editor
// surfaces it so a file-only save can offer the serialized document as a
// download artifact instead of silently diverging from the remote.
type SaveOutcome string

const (
	OutcomeRemote SaveOutcome = "remote"
	OutcomeFile   SaveOutcome = "file"
)

// Store is the persistence boundary: exactly two operations, one
// outstanding request each, no retries.
type Store interface {
	Load(ctx context.Context) (model.Document, error)
	Save(ctx context.Context, doc model.Document) (SaveOutcome, error)
}
