package exclusion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "split-changes.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_ReadsExcludedDirectories(t *testing.T) {
	p := writeConfig(t, "excluded-directories:\n  - legacy/app\n  - tools\n")

	cfg, err := Load(p, MissingAsError)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy/app", "tools"}, cfg.ExcludedDirectories)
}

func TestLoad_MissingKeyDefaultsToEmpty(t *testing.T) {
	p := writeConfig(t, "something-else: true\n")

	cfg, err := Load(p, MissingAsEmpty)
	require.NoError(t, err)
	assert.NotNil(t, cfg.ExcludedDirectories)
	assert.Empty(t, cfg.ExcludedDirectories)
}

func TestLoad_EmptyDocumentDefaultsToEmpty(t *testing.T) {
	p := writeConfig(t, "")

	cfg, err := Load(p, MissingAsError)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludedDirectories)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, MissingAsEmpty)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludedDirectories)

	_, err = Load(missing, MissingAsError)
	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_UnsetPath(t *testing.T) {
	cfg, err := Load("  ", MissingAsEmpty)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludedDirectories)

	_, err = Load("", MissingAsError)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "excluded-directories: [unterminated\n")

	_, err := Load(p, MissingAsEmpty)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		dirs       []string
		exclusions []string
		expected   []string
	}{
		{"removes exact matches", []string{"x", "y"}, []string{"y"}, []string{"x"}},
		{"keeps order", []string{"c", "a", "b", "a/b"}, []string{"a"}, []string{"c", "b", "a/b"}},
		{"no prefix matching", []string{"apps/web"}, []string{"apps"}, []string{"apps/web"}},
		{"nothing excluded", []string{"a", "b"}, nil, []string{"a", "b"}},
		{"everything excluded", []string{"a"}, []string{"a"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filter(tt.dirs, tt.exclusions))
		})
	}
}
