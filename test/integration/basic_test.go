package integration

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/perfcorpus/pkg/corpus"
	"pkg.jsn.cam/perfcorpus/pkg/storage"
)

var (
	methodSig = regexp.MustCompile(`public async Task<string> \w+Async\(`)
	tempLocal = regexp.MustCompile(`(?m)^        var temp\d+ = (.+);$`)
)

// TestDefaultCorpusOnDisk generates the stock corpus into a directory and
// checks it file by file against the configured layout.
func TestDefaultCorpusOnDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	backend, err := storage.NewDirBackend(dir)
	require.NoError(t, err)

	cfg := corpus.DefaultConfig()
	cfg.Seed = 2025
	gen, err := corpus.New(cfg)
	require.NoError(t, err)

	res, err := gen.Generate(backend, nil)
	require.NoError(t, err)

	catalog := make(map[string]bool)
	for _, v := range corpus.DefaultCatalog() {
		catalog[v] = true
	}

	files, methods, injected := 0, 0, 0
	for _, class := range gen.Plan() {
		data, err := os.ReadFile(filepath.Join(dir, class.FileName))
		require.NoError(t, err, class.FileName)
		src := string(data)
		files++

		sigs := methodSig.FindAllStringIndex(src, -1)
		require.Len(t, sigs, class.MethodCount(), class.FileName)
		methods += len(sigs)

		for i, loc := range sigs {
			end := len(src)
			if i+1 < len(sigs) {
				end = sigs[i+1][0]
			}
			body := src[loc[0]:end]
			locals := tempLocal.FindAllStringSubmatch(body, -1)

			if !class.Profile.Kind.InjectsViolations() {
				assert.Empty(t, locals, class.FileName)
				assert.Contains(t, body, "Random.Shared.Next(10, 100)")
				continue
			}

			require.NotEmpty(t, locals, class.FileName)
			require.LessOrEqual(t, len(locals), 4, class.FileName)
			seen := make(map[string]bool)
			for _, l := range locals {
				assert.True(t, catalog[l[1]], "unexpected expression %q", l[1])
				assert.False(t, seen[l[1]], "duplicate expression %q", l[1])
				seen[l[1]] = true
			}
			injected += len(locals)
		}
	}

	assert.Equal(t, 105, files)
	assert.Equal(t, 700, methods)
	assert.Equal(t, res.Manifest.InjectedViolations, injected)

	summary, err := os.ReadFile(filepath.Join(dir, corpus.DefaultSummaryName))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(summary), "Expected analyzer violations: ~2200-2750"))
}
