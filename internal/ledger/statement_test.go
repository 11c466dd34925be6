package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpro-dev/bankpro/internal/model"
)

func TestWriteStatement(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	acct := model.Account{
		AccountNo: "ABCD123456",
		Transactions: []model.Transaction{
			{ID: "tx1", Type: model.TxDeposit, Amount: dec("500.00"), BalanceAfter: dec("500.00"), Note: "deposit", Timestamp: ts},
			{ID: "tx2", Type: model.TxTransferOut, Amount: dec("200.00"), BalanceAfter: dec("300.00"), Note: "to WXYZ987654", Timestamp: ts.Add(time.Hour)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, acct))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header + one row per transaction")
	assert.Equal(t, StatementHeader, lines[0])
	assert.Contains(t, lines[1], "tx1")
	assert.Contains(t, lines[1], "500.00")
	assert.Contains(t, lines[2], "transfer_out")
	assert.Contains(t, lines[2], "to WXYZ987654")
}

func TestStatement_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	acct := model.Account{
		Transactions: []model.Transaction{
			{ID: "tx1", Type: model.TxDeposit, Amount: dec("500.00"), BalanceAfter: dec("500.00"), Note: "deposit", Timestamp: ts},
			{ID: "tx2", Type: model.TxInterest, Amount: dec("25.00"), BalanceAfter: dec("525.00"), Note: "5% for 1 yrs", Timestamp: ts},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, acct))

	got, err := ReadStatement(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "tx1", got[0].ID)
	assert.Equal(t, model.TxDeposit, got[0].Type)
	assert.True(t, got[0].Amount.Equal(dec("500.00")))
	assert.True(t, got[0].Timestamp.Equal(ts))
	assert.Equal(t, model.TxInterest, got[1].Type)
	assert.True(t, got[1].BalanceAfter.Equal(dec("525.00")))
	assert.Equal(t, "5% for 1 yrs", got[1].Note)
}

func TestReadStatement_Empty(t *testing.T) {
	got, err := ReadStatement(strings.NewReader(StatementHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalStatementRow_Errors(t *testing.T) {
	_, err := UnmarshalStatementRow([]string{"too", "few"})
	require.Error(t, err)

	_, err = UnmarshalStatementRow([]string{"tx1", "not-a-time", "deposit", "1.00", "1.00", ""})
	require.Error(t, err)

	_, err = UnmarshalStatementRow([]string{"tx1", "2025-06-01T10:30:00Z", "deposit", "abc", "1.00", ""})
	require.Error(t, err)
}
