package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atelier.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EmptyFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Portfolio", cfg.Site.Title)
	require.Equal(t, "projects", cfg.Paths.Projects)
	require.Equal(t, "output", cfg.Paths.Output)
	require.Equal(t, 1600, cfg.Images.MaxWidth)
	require.Equal(t, 400, cfg.Images.ThumbWidth)
	require.Equal(t, 80, cfg.Images.Quality)
	require.NotEmpty(t, cfg.Theme.Background)
	require.Equal(t, cfg.Theme.FontFamily, cfg.Theme.HeadingFont)
}

func TestLoad_ExplicitValues_OverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  title: Jane Doe
  subtitle: sculpture and print
images:
  max_width: 1200
  thumb_width: 300
  quality: 72
theme:
  accent: "#003049"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", cfg.Site.Title)
	require.Equal(t, "sculpture and print", cfg.Site.Subtitle)
	require.Equal(t, 1200, cfg.Images.MaxWidth)
	require.Equal(t, 300, cfg.Images.ThumbWidth)
	require.Equal(t, 72, cfg.Images.Quality)
	require.Equal(t, "#003049", cfg.Theme.Accent)
}

func TestLoad_EnvReferences_AreExpanded(t *testing.T) {
	t.Setenv("ATELIER_TEST_TITLE", "From Env")
	path := writeConfig(t, "site:\n  title: ${ATELIER_TEST_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", cfg.Site.Title)
}

func TestLoad_QualityOutOfRange_ReturnsError(t *testing.T) {
	path := writeConfig(t, "images:\n  quality: 150\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_ThumbWiderThanMax_ReturnsError(t *testing.T) {
	path := writeConfig(t, "images:\n  max_width: 200\n  thumb_width: 400\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestInit_NewFile_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atelier.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", cfg.Site.Title)
}

func TestInit_ExistingFileWithoutForce_ReturnsError(t *testing.T) {
	path := writeConfig(t, "site:\n  title: keep\n")

	err := Init(path, false)
	require.Error(t, err)

	cfg, loadErr := Load(path)
	require.NoError(t, loadErr)
	require.Equal(t, "keep", cfg.Site.Title)
}

func TestInit_ExistingFileWithForce_Overwrites(t *testing.T) {
	path := writeConfig(t, "site:\n  title: old\n")

	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", cfg.Site.Title)
}
