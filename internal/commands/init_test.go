package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpro-dev/bankpro/internal/config"
)

func TestRunInit_CreatesLedgerAndConfig(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := runInit(&out, dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "bankpro.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bank_db.json"), cfg.Ledger.Path)

	_, err = os.Stat(cfg.Ledger.Path)
	require.NoError(t, err, "ledger file should exist")

	assert.Contains(t, out.String(), "Admin username: admin")
	assert.Contains(t, out.String(), "Admin password: ")
}

func TestRunInit_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, runInit(&out, dir))

	err := runInit(&out, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
