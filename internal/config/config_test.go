package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "/var/lib/bankpro/bank_db.json"
	cfg.Logging.Level = "debug"

	path := filepath.Join(t.TempDir(), "bankpro.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.Path, got.Ledger.Path)
	assert.Equal(t, cfg.Ledger.AuditLog, got.Ledger.AuditLog)
	assert.Equal(t, cfg.Export.Dir, got.Export.Dir)
	assert.Equal(t, "debug", got.Logging.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bank_db.json", cfg.Ledger.Path)
	assert.Equal(t, "audit-log.csv", cfg.Ledger.AuditLog)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankpro.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "path: bank_db.json")
	assert.Contains(t, contents, "audit_log: audit-log.csv")
	assert.Contains(t, contents, "level: info")
}
