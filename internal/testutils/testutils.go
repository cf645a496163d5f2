package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/controldoc/web/internal/config"
)

// ConfigForTests returns a validated config built from .env.test (when the
// project has one) with overrides applied on top. Variables are set with
// t.Setenv, so they are restored when the test ends.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := config.New()
	require.NoError(t, err, "test configuration should be valid")
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
