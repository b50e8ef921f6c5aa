package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/boerd-data")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, filepath.Join("/tmp/boerd-data", "boerd.db"), cfg.DBDatabase)
	assert.Equal(t, int64(100*1024*1024), cfg.UploadMaxBytes)
	assert.Equal(t, "local", cfg.StorageType)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "me", cfg.DefaultUsername)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_CONNECTION_LIMIT", "12")
	t.Setenv("FETCH_TIMEOUT", "2500")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12, cfg.DBConnectionLimit)
	assert.Equal(t, 2500*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, int64(1024), cfg.UploadMaxBytes)
}

func TestLoadRejectsIncompleteObjectStorage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "r2")
	t.Setenv("S3_BUCKET", "boerd")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ACCESS_KEY_ID")

	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R2_ACCOUNT_ID")

	t.Setenv("R2_ACCOUNT_ID", "acct")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEFAULT_USERNAME=curator\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { os.Unsetenv("DEFAULT_USERNAME") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "curator", cfg.DefaultUsername)
}
