package store

import (
	"context"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// FallbackStore composes the remote live database with the flat file.
// Reads try the remote first when one is configured; a transport failure
// or an empty result falls back to the file, first non-empty result wins.
// Writes prefer the remote; without one (or when it rejects the write) the
// file takes it so the user is never left without a persisted artifact.
type FallbackStore struct {
	remote Store // nil when no remote is configured
	local  Store
	log    *logger.Logger
}

func NewFallbackStore(remote, local Store, log *logger.Logger) *FallbackStore {
	return &FallbackStore{remote: remote, local: local, log: log}
}

func (s *FallbackStore) Load(ctx context.Context) (model.Document, error) {
	if s.remote != nil {
		doc, err := s.remote.Load(ctx)
		if err == nil {
			return doc, nil
		}
		s.log.Warn("Remote content load failed, falling back to file", "error", err)
	}
	return s.local.Load(ctx)
}

func (s *FallbackStore) Save(ctx context.Context, doc model.Document) (SaveOutcome, error) {
	if s.remote != nil {
		if outcome, err := s.remote.Save(ctx, doc); err == nil {
			return outcome, nil
		} else {
			s.log.Warn("Remote content save failed, falling back to file", "error", err)
		}
	}
	return s.local.Save(ctx, doc)
}
