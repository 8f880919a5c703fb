// Package errors holds the sentinel errors of the content domain.
package errors

import "errors"

var (
	// ErrNotFound: the backend has no persisted document at all.
	ErrNotFound = errors.New("content document not found")

	// ErrEmptyDocument: the backend answered but the document carried no
	// sections worth rendering. Read fallback treats this like a miss.
	ErrEmptyDocument = errors.New("content document is empty")

	// ErrNoSession: an editor operation arrived before any load succeeded.
	ErrNoSession = errors.New("no editor session: content has not been loaded")
)
