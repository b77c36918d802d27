package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `cellosaurus:
  base_url: http://localhost:9090
  timeout_seconds: 5
pubmed:
  retries: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sources, err := LoadSources(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", sources["cellosaurus"].BaseURL)
	assert.Equal(t, 5, sources["cellosaurus"].TimeoutSeconds)
	assert.Equal(t, 1, sources["pubmed"].Retries)
	assert.Zero(t, sources["pubmed"].TimeoutSeconds)
}

func TestLoadSourcesEmptyPath(t *testing.T) {
	sources, err := LoadSources("")
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
