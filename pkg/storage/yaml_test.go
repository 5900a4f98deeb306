package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

func TestYAMLStore(t *testing.T) {
	t.Run("PutAndGetYAML", func(t *testing.T) {
		store := NewYAMLStore(NewMemoryBackend())

		original := testRecord{Name: "Method0Async", Values: []string{"DateTime.Now", `File.ReadAllText("test.txt")`}}
		require.NoError(t, store.PutYAML("manifest.yaml", original))

		var got testRecord
		require.NoError(t, store.GetYAML("manifest.yaml", &got))
		assert.Equal(t, original, got)
	})

	t.Run("GetYAMLNonExistent", func(t *testing.T) {
		store := NewYAMLStore(NewMemoryBackend())

		var got testRecord
		require.NoError(t, store.GetYAML("missing.yaml", &got))
		assert.Zero(t, got)
	})

	t.Run("GetYAMLInvalid", func(t *testing.T) {
		backend := NewMemoryBackend()
		require.NoError(t, backend.Put("bad.yaml", []byte("name: [unterminated")))

		var got testRecord
		assert.Error(t, NewYAMLStore(backend).GetYAML("bad.yaml", &got))
	})
}
