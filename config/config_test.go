package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(`
paths = ["vendor/acme", "/opt/modules"]
ignore = ["dev/**", "**/Test/**"]
php_extension = ".class.php"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/acme", "/opt/modules"}, cfg.Paths)
	assert.Equal(t, []string{"dev/**", "**/Test/**"}, cfg.Ignore)
	assert.Equal(t, ".class.php", cfg.PhpExtension)
}

func TestParseRejectsBadExtension(t *testing.T) {
	_, err := Parse(`php_extension = "php"`)
	require.Error(t, err)
}

func TestParseRejectsBadToml(t *testing.T) {
	_, err := Parse(`paths = [`)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Paths)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, cfg.PhpExtension)
}

func TestLoadReadsWorkspaceFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(`paths = ["extra"]`), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, cfg.Paths)
}

func TestCompileIgnore(t *testing.T) {
	cfg := Config{Ignore: []string{"dev/**"}}
	globs, err := cfg.CompileIgnore()
	require.NoError(t, err)
	require.Len(t, globs, 1)
	assert.True(t, globs[0].Match("dev/tools/registration.php"))
	assert.False(t, globs[0].Match("app/code/registration.php"))
}

func TestCompileIgnoreBadPattern(t *testing.T) {
	cfg := Config{Ignore: []string{"[dev"}}
	_, err := cfg.CompileIgnore()
	require.Error(t, err)
}
