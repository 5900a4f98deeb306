package storage

import (
	"errors"
	"fmt"
)

// Backend receives named artifacts produced by a generation run.
// Put overwrites any artifact already stored under the same name, so a rerun
// over an existing target replaces the previous corpus in place.
type Backend interface {
	Put(name string, data []byte) error
	// Get returns nil, nil when no artifact has the given name.
	Get(name string) ([]byte, error)
	// ForEach visits stored artifacts in name order.
	ForEach(fn func(name string, data []byte) error) error

	Close() error
}

// Kind selects a Backend implementation.
type Kind string

const (
	KindDir    Kind = "dir"
	KindBbolt  Kind = "bbolt"
	KindMemory Kind = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open creates the backend of the given kind. path is the output directory
// for KindDir, the database file for KindBbolt, and ignored for KindMemory.
func Open(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindDir:
		return NewDirBackend(path)
	case KindBbolt:
		return NewBboltBackend(path)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
