package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpro-dev/bankpro/internal/credential"
	"github.com/bankpro-dev/bankpro/internal/model"
)

func TestLoad_MissingFileInitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_db.json")
	s := New(path)

	doc, password, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Accounts)
	assert.Equal(t, DefaultAdminUsername, doc.Meta.Admin.Username)
	assert.NotEmpty(t, doc.Meta.Admin.PasswordHash)
	assert.False(t, doc.Meta.CreatedAt.IsZero())
	require.NotEmpty(t, password, "generated password must be reported to the caller")
	assert.True(t, credential.VerifyPassword(password, doc.Meta.Admin.PasswordHash))

	// The fresh document must already be on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_db.json")
	s := New(path)

	doc, _, err := s.Initialize()
	require.NoError(t, err)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc.Accounts = append(doc.Accounts, &model.Account{
		AccountNo: "ABCD123456",
		Name:      "Asha Verma",
		Age:       30,
		Mobile:    "9876543210",
		Email:     "asha@example.com",
		Aadhaar:   "123456789012",
		PAN:       "ABCDE12345",
		Address:   "42 MG Road",
		PinSalt:   "aabbccdd00112233",
		PinHash:   "deadbeef",
		Balance:   decimal.RequireFromString("500.25"),
		Transactions: []model.Transaction{{
			ID:           "txid",
			Type:         model.TxDeposit,
			Amount:       decimal.RequireFromString("500.25"),
			BalanceAfter: decimal.RequireFromString("500.25"),
			Note:         "deposit",
			Timestamp:    created,
		}},
		CreatedAt: created,
	})
	require.NoError(t, s.Save(doc))

	got, password, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, password, "loading an existing file generates no credentials")
	require.Len(t, got.Accounts, 1)

	a := got.Accounts[0]
	assert.Equal(t, "ABCD123456", a.AccountNo)
	assert.Equal(t, "Asha Verma", a.Name)
	assert.Equal(t, "9876543210", a.Mobile)
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("500.25")))
	require.Len(t, a.Transactions, 1)
	assert.Equal(t, model.TxDeposit, a.Transactions[0].Type)
	assert.True(t, a.Transactions[0].BalanceAfter.Equal(a.Balance))
	assert.True(t, a.Transactions[0].Timestamp.Equal(created))
	assert.Equal(t, got.Meta.Admin, doc.Meta.Admin)
}

func TestSave_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank_db.json")
	s := New(path)

	_, _, err := s.Initialize()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bank_db.json", entries[0].Name())
}

func TestLoad_CorruptFileQuarantined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank_db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	doc, password, err := s.Load()
	require.NoError(t, err, "corruption recovery must not surface an error")
	assert.Empty(t, doc.Accounts)
	assert.NotEmpty(t, password, "reinitialized ledger must report its fresh credentials")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var quarantined string
	for _, e := range entries {
		if e.Name() != "bank_db.json" {
			quarantined = e.Name()
		}
	}
	require.NotEmpty(t, quarantined, "corrupt original must remain on disk")
	assert.Contains(t, quarantined, "bank_db.corrupt.")
	assert.Contains(t, quarantined, ".json")

	data, err := os.ReadFile(filepath.Join(dir, quarantined))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "quarantined bytes must be untouched")
}

func TestInitialize_PasswordVerifies(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "bank_db.json"))

	doc, password, err := s.Initialize()
	require.NoError(t, err)
	assert.True(t, credential.VerifyPassword(password, doc.Meta.Admin.PasswordHash))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "bank_db.json"))
	doc, _, err := s.Initialize()
	require.NoError(t, err)

	exportDir := filepath.Join(dir, "exports")
	path, err := s.Export(doc, exportDir)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "bank_db_export_")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), doc.Meta.Admin.Username)
}

func TestSave_UnwritablePath(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "bank_db.json"))
	err := s.Save(&model.Document{})
	require.Error(t, err)
}
