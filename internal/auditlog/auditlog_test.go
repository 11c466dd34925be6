package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit-log.csv")
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	err := Append(path, []Entry{
		{Timestamp: ts, Actor: "admin", Action: "delete", Detail: "ABCD123456"},
	})
	require.NoError(t, err)

	err = Append(path, []Entry{
		{Timestamp: ts.Add(time.Minute), Actor: "admin", Action: "export", Detail: "exports/bank_db_export_20250601090100.json"},
	})
	require.NoError(t, err)

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "delete", entries[0].Action)
	assert.Equal(t, "ABCD123456", entries[0].Detail)
	assert.True(t, entries[0].Timestamp.Equal(ts))
	assert.Equal(t, "export", entries[1].Action)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit-log.csv")
	e := Entry{Timestamp: time.Now().UTC(), Actor: "admin", Action: "rotate", Detail: ""}

	require.NoError(t, Append(path, []Entry{e}))
	require.NoError(t, Append(path, []Entry{e}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "few"})
	require.Error(t, err)

	_, err = UnmarshalEntry([]string{"not-a-time", "admin", "delete", ""})
	require.Error(t, err)
}
