package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/perfcorpus/pkg/corpus"
	"pkg.jsn.cam/perfcorpus/pkg/storage"
)

const headline = "Generated 105 files with 700 total methods\nExpected ~2200-2750 analyzer violations to process\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunWritesCorpusToDirectory(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--output-dir", dir, "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, headline, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 107)

	for _, name := range []string{"Azure_Orchestrator_000.cs", "Azure_Orchestrator_049.cs", "Azure_Activity_029.cs", "DTF_Orchestrator_024.cs", corpus.DefaultSummaryName, corpus.DefaultManifestName} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	_, err = os.Stat(filepath.Join(dir, "Azure_Orchestrator_050.cs"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunTwiceOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--output-dir", dir, "--seed", "7")
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "Azure_Orchestrator_000.cs"))
	require.NoError(t, err)

	out, err := execute(t, "--output-dir", dir, "--seed", "7", "--progress", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, headline, out)

	second, err := os.ReadFile(filepath.Join(dir, "Azure_Orchestrator_000.cs"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 107)
}

func TestRunBboltArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive.db")

	out, err := execute(t, "--output-dir", dir, "--backend", "bbolt", "--archive-path", archive)
	require.NoError(t, err)
	assert.Equal(t, headline, out)

	backend, err := storage.NewBboltBackend(archive)
	require.NoError(t, err)
	defer backend.Close()

	count := 0
	require.NoError(t, backend.ForEach(func(string, []byte) error {
		count++
		return nil
	}))
	assert.Equal(t, 107, count)

	var manifest corpus.Manifest
	require.NoError(t, storage.NewYAMLStore(backend).GetYAML(corpus.DefaultManifestName, &manifest))
	assert.Len(t, manifest.Files, 105)
	assert.NotZero(t, manifest.Seed)
}

func TestRunMemoryBackendWritesNothing(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--output-dir", dir, "--backend", "memory")
	require.NoError(t, err)
	assert.Equal(t, headline, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
corpus:
  profiles:
    - kind: orchestrator
      label: Azure Functions Orchestrators
      classes: 2
      methods: 3
      file-prefix: Azure_Orchestrator
      namespace: Performance.Azure.Batch%d
      class: TestOrchestrator%03d
`), 0644))

	out, err := execute(t, "--config-file", config, "--output-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Generated 2 files with 6 total methods\nExpected ~24-30 analyzer violations to process\n", out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, "--output-dir", t.TempDir(), "--backend", "s3")
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)

	_, err = execute(t, "unexpected-arg")
	assert.Error(t, err)
}
