package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLStore wraps a Backend and provides YAML serialization convenience methods
type YAMLStore struct {
	backend Backend
}

// NewYAMLStore creates a new YAML store wrapper around a backend
func NewYAMLStore(backend Backend) *YAMLStore {
	return &YAMLStore{backend: backend}
}

// Backend returns the underlying backend
func (y *YAMLStore) Backend() Backend {
	return y.backend
}

// PutYAML stores a YAML-encoded value under name
func (y *YAMLStore) PutYAML(name string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return y.backend.Put(name, data)
}

// GetYAML retrieves and decodes a value. A missing artifact leaves v untouched
// and returns nil.
func (y *YAMLStore) GetYAML(name string, v any) error {
	data, err := y.backend.Get(name)
	if err != nil {
		return err
	}

	if data == nil {
		return nil
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode YAML: %w", err)
	}

	return nil
}
