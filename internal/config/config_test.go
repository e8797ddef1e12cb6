package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	base := filepath.Dir(path)
	assert.Equal(t, filepath.Join(base, "tests"), cfg.TestDir)
	assert.Equal(t, filepath.Join(base, ".bishin"), cfg.WorkDir)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, "test-dir = \"testdir\"\nwork-dir = \"workdir\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	base := filepath.Dir(path)
	assert.Equal(t, filepath.Join(base, "testdir"), cfg.TestDir)
	assert.Equal(t, filepath.Join(base, "workdir"), cfg.WorkDir)
}

func TestLoadKeepsAbsolutePaths(t *testing.T) {
	path := writeConfig(t, "test-dir = \"/abs/tests\"\nwork-dir = \"/abs/work\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/abs/tests", cfg.TestDir)
	assert.Equal(t, "/abs/work", cfg.WorkDir)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), Filename)

	_, err := Load(missing)
	var missingErr *MissingConfigError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, missing, missingErr.Path)
}

func TestLoadMalformedToml(t *testing.T) {
	path := writeConfig(t, "test-dir = [broken\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGeneratedDir(t *testing.T) {
	cfg := &Config{WorkDir: "/abs/work"}
	assert.Equal(t, filepath.Join("/abs/work", "generated"), cfg.GeneratedDir())
}
