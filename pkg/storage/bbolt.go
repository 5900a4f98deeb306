package storage

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var artifactsBucket = []byte("artifacts")

// BboltBackend archives every artifact of a run into a single bbolt file,
// keyed by artifact name.
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) the archive at dbPath
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(artifactsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create artifacts bucket: %w", err)
	}

	return &BboltBackend{db: db}, nil
}

// Put stores an artifact, replacing any previous content
func (b *BboltBackend) Put(name string, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(artifactsBucket).Put([]byte(name), data)
	})
}

// Get retrieves an artifact by name
func (b *BboltBackend) Get(name string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(artifactsBucket).Get([]byte(name))
		if v != nil {
			// Copy the value since it's only valid during the transaction
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	return value, err
}

// ForEach iterates over all artifacts; bbolt keeps keys in byte order
func (b *BboltBackend) ForEach(fn func(name string, data []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(artifactsBucket).ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

// Path returns the archive file location
func (b *BboltBackend) Path() string {
	return b.db.Path()
}

// Close closes the database
func (b *BboltBackend) Close() error {
	return b.db.Close()
}
