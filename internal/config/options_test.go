package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/doc-vault/internal/api"
)

// isolate keeps Load away from the developer's real config and .env
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	for _, key := range []string{"API_URL", "HOST", "SKIP_AUTH", "DEBUG", "LOG_FILE"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Options{}, *opts)
}

func TestLoad_ConfigFileThenEnv(t *testing.T) {
	dir := isolate(t)
	cfgFile := filepath.Join(dir, "vault.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("api_url: http://file.test/api/documents\nhost: box\ndebug: true\n"), 0o644))

	opts, err := Load(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "http://file.test/api/documents", opts.APIURL)
	assert.Equal(t, "box", opts.Host)
	assert.True(t, opts.Debug)
	assert.False(t, opts.SkipAuth)

	t.Setenv("DOCVAULT_API_URL", "http://env.test/api/documents")
	t.Setenv("DOCVAULT_SKIP_AUTH", "true")
	opts, err = Load(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api/documents", opts.APIURL)
	assert.True(t, opts.SkipAuth)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("DOCVAULT_LOG_FILE=/tmp/vault.log\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DOCVAULT_LOG_FILE") })

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vault.log", opts.LogFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedDefaultFile(t *testing.T) {
	isolate(t)
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("api_url: [unterminated\n"), 0o644))

	_, err = Load("")
	assert.ErrorContains(t, err, path)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	written, err := Save(&Options{Host: "3000-abc-premiumproject.examly.io", SkipAuth: true}, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3000-abc-premiumproject.examly.io", opts.Host)
	assert.True(t, opts.SkipAuth)
}

func TestDocumentsURL_Precedence(t *testing.T) {
	opts := &Options{Host: "3000-abc-premiumproject.examly.io"}
	assert.Equal(t, "https://8080-abc-premiumproject.examly.io/api/documents", opts.DocumentsURL(""))
	assert.Equal(t, "http://pref.test/api/documents", opts.DocumentsURL(" http://pref.test/api/documents "))

	opts.APIURL = "http://flag.test/api/documents"
	assert.Equal(t, "http://flag.test/api/documents", opts.DocumentsURL("http://pref.test/api/documents"))

	assert.Equal(t, api.ProductionBaseURL, (&Options{}).DocumentsURL(""))
}
