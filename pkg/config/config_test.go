package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEOSERVER_URL", "")
	t.Setenv("GEOSERVER_USER", "")
	t.Setenv("GEOSERVER_PASSWORD", "")
	t.Setenv("GEOSERVER_CONFIG", "")
}

func TestReadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Read("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/geoserver", cfg.URL)
	assert.Equal(t, "admin", cfg.User)
	assert.Equal(t, "geoserver", cfg.Password)
}

func TestReadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOSERVER_URL", "https://maps.example.com/geoserver/")
	t.Setenv("GEOSERVER_USER", "gis")
	t.Setenv("GEOSERVER_PASSWORD", "secret")

	cfg, err := Read("")
	require.NoError(t, err)

	// Trailing slash is trimmed so path joining stays predictable.
	assert.Equal(t, "https://maps.example.com/geoserver", cfg.URL)
	assert.Equal(t, "gis", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
}

func TestReadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "geoserver.yaml")
	content := "url: http://gs.internal:8080/geoserver\nuser: ops\npassword: hunter2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "http://gs.internal:8080/geoserver", cfg.URL)
	assert.Equal(t, "ops", cfg.User)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestReadEnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "geoserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: from-file\n"), 0o644))

	t.Setenv("GEOSERVER_USER", "from-env")

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.User)
	// Unset values still come from defaults.
	assert.Equal(t, "http://localhost:8080/geoserver", cfg.URL)
}

func TestReadConfigFileFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "geoserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("password: filepass\n"), 0o644))
	t.Setenv("GEOSERVER_CONFIG", path)

	cfg, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, "filepass", cfg.Password)
}

func TestReadMissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "localhost:8080/geoserver"},
		{name: "bad scheme", url: "ftp://localhost/geoserver"},
		{name: "missing host", url: "http:///geoserver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEOSERVER_URL", tt.url)

			_, err := Read("")
			assert.Error(t, err)
		})
	}
}
