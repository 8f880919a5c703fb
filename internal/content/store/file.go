package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

const filePermissions = 0644

// FileStore reads and writes the flat content.json. Writes go through a
// temp file and rename so a crash mid-write never truncates the document.
type FileStore struct {
	path string
	log  *logger.Logger
}

func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Load(_ context.Context) (model.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("read content file %s: %w", s.path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", s.path, err)
	}
	if len(doc) == 0 {
		return nil, contenterrors.ErrEmptyDocument
	}

	s.log.Info("Content loaded from file", "path", s.path)
	return doc, nil
}

func (s *FileStore) Save(_ context.Context, doc model.Document) (SaveOutcome, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return OutcomeFile, fmt.Errorf("serialize content document: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, filePermissions); err != nil {
		return OutcomeFile, fmt.Errorf("write content file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return OutcomeFile, fmt.Errorf("replace content file %s: %w", s.path, err)
	}

	s.log.Info("Content saved to file", "path", s.path, "bytes", len(data))
	return OutcomeFile, nil
}
