package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies a transaction record. The signed effect on the balance
// is implied by the type; Amount is always a positive magnitude.
type TxType string

const (
	TxDeposit     TxType = "deposit"
	TxWithdraw    TxType = "withdraw"
	TxTransferOut TxType = "transfer_out"
	TxTransferIn  TxType = "transfer_in"
	TxInterest    TxType = "interest"
)

// Transaction is one immutable record of a balance-affecting event.
// Records are only ever appended, never edited or reordered.
type Transaction struct {
	ID           string          `json:"tx_id"` // random 128-bit, hex-encoded
	Type         TxType          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"` // running audit checkpoint
	Note         string          `json:"note"`
	Timestamp    time.Time       `json:"ts"`
}
