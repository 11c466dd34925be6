package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one customer's identity, credential material, balance and
// transaction history. Identity fields are validated at creation only.
type Account struct {
	AccountNo    string          `json:"account_no"` // 4 uppercase letters + 6 digits
	Name         string          `json:"name"`
	Age          int             `json:"age"`
	Mobile       string          `json:"mobile"` // exactly 10 digits
	Email        string          `json:"email"`
	Aadhaar      string          `json:"aadhaar"` // exactly 12 digits
	PAN          string          `json:"pan"`     // exactly 10 characters
	Address      string          `json:"address"`
	PinSalt      string          `json:"pin_salt"`
	PinHash      string          `json:"pin_hash"` // SHA-256(salt + pin), hex
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
	CreatedAt    time.Time       `json:"created_at"`
}
