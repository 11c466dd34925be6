package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankpro-dev/bankpro/internal/model"
)

// StatementHeader is the CSV header for an account statement.
const StatementHeader = "tx_id,ts,type,amount,balance_after,note"

const (
	numStatementFields = 6
	colTxID            = 0
	colTimestamp       = 1
	colType            = 2
	colAmount          = 3
	colBalanceAfter    = 4
	colNote            = 5
)

// WriteStatement writes an account's full transaction history as CSV,
// header included, in append order.
func WriteStatement(w io.Writer, acct model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range acct.Transactions {
		if err := cw.Write(MarshalStatementRow(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadStatement parses a statement CSV back into transactions.
func ReadStatement(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numStatementFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalStatementRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// MarshalStatementRow converts a transaction to a CSV row.
func MarshalStatementRow(tx model.Transaction) []string {
	row := make([]string, numStatementFields)
	row[colTxID] = tx.ID
	row[colTimestamp] = tx.Timestamp.Format(time.RFC3339)
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colBalanceAfter] = tx.BalanceAfter.StringFixed(2)
	row[colNote] = tx.Note
	return row
}

// UnmarshalStatementRow converts a CSV row back to a transaction.
func UnmarshalStatementRow(record []string) (model.Transaction, error) {
	if len(record) != numStatementFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numStatementFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	balanceAfter, err := decimal.NewFromString(record[colBalanceAfter])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance_after %q: %w", record[colBalanceAfter], err)
	}

	return model.Transaction{
		ID:           record[colTxID],
		Type:         model.TxType(record[colType]),
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Note:         record[colNote],
		Timestamp:    ts,
	}, nil
}
