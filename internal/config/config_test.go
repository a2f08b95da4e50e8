package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 500, cfg.ScanPageSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "FichaClinica", cfg.Tables.Records)
	assert.Equal(t, "Medicamentos", cfg.Tables.Medications)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE", " Cassandra ")
	t.Setenv("SCAN_PAGE_SIZE", "50")
	t.Setenv("TUTORTABLE", "tutores")
	t.Setenv("PORT", "9090")

	cfg, err := load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, StoreCassandra, cfg.Store)
	assert.Equal(t, 50, cfg.ScanPageSize)
	assert.Equal(t, "tutores", cfg.Tables.Tutors)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE", "sqlite")

	_, err := load(noEnvFile(t))
	require.Error(t, err)
}

func TestValidate_PageSize(t *testing.T) {
	cfg, err := load(noEnvFile(t))
	require.NoError(t, err)

	cfg.ScanPageSize = 0
	assert.Error(t, cfg.Validate())

	cfg.ScanPageSize = MaxScanPageSize + 1
	assert.Error(t, cfg.Validate())

	cfg.ScanPageSize = MaxScanPageSize
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RejectsHugePageSize(t *testing.T) {
	t.Setenv("SCAN_PAGE_SIZE", "99999999999")

	_, err := load(noEnvFile(t))
	require.Error(t, err)
}
