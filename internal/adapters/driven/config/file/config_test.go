package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 300, cfg.PreviewChars)
	assert.Equal(t, 10, cfg.KeywordCount)
	assert.Equal(t, 2, cfg.Downloader.RequestIntervalSeconds)
	assert.NotEmpty(t, cfg.OutputDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
output_dir = "/data/transcripts"
language = "de"

[downloader]
binary_path = "/opt/yt-dlp"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/transcripts", cfg.OutputDir)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "/opt/yt-dlp", cfg.Downloader.BinaryPath)
	// Untouched fields keep their defaults.
	assert.Equal(t, 300, cfg.PreviewChars)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.OutputDir = "/somewhere"
	cfg.Language = "fr"
	cfg.Downloader.RequestIntervalSeconds = 5

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
