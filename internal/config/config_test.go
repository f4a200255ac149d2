package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_MySQL(t *testing.T) {
	path := writeConfig(t, `
env: local
storage_driver: mysql
http_server:
  address: "0.0.0.0:8080"
  timeout: 10s
db:
  user: autozone
  name: autozone_test
cors:
  allowed_origins: ["http://localhost:5173"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, DriverMySQL, cfg.StorageDriver)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "errors.log", cfg.ErrorLog)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MemoryDriverNeedsNoDB(t *testing.T) {
	path := writeConfig(t, "env: dev\nstorage_driver: memory\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
}

func TestLoad_MySQLWithoutCredentials(t *testing.T) {
	path := writeConfig(t, "storage_driver: mysql\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage_driver: postgres\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown storage_driver")
}

func TestLoad_MemoryDriverRejectedInProd(t *testing.T) {
	path := writeConfig(t, "env: prod\nstorage_driver: memory\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "not allowed in prod")
}

func TestLoad_MemoryDriverDefaultEnvIsProd(t *testing.T) {
	path := writeConfig(t, "storage_driver: memory\n")

	_, err := Load(path)
	assert.Error(t, err)
}
