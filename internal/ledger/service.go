// Package ledger implements the transaction engine: every balance-changing
// operation, its invariant checks, and the append-only transaction log.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankpro-dev/bankpro/internal/credential"
	"github.com/bankpro-dev/bankpro/internal/directory"
	"github.com/bankpro-dev/bankpro/internal/id"
	"github.com/bankpro-dev/bankpro/internal/logger"
	"github.com/bankpro-dev/bankpro/internal/model"
	"github.com/bankpro-dev/bankpro/internal/store"
)

// DeleteConfirmToken must be echoed back exactly to delete an account.
const DeleteConfirmToken = "DELETE"

var hundred = decimal.NewFromInt(100)

// Service owns the in-memory ledger document and applies operations to it.
// One mutex serializes every mutating entry point, so multi-account
// operations (transfer) can never interleave partial debits and credits.
type Service struct {
	mu           sync.Mutex
	store        *store.Store
	doc          *model.Document
	initPassword string
}

// NewService loads the document from st and wraps it in a Service.
func NewService(st *store.Store) (*Service, error) {
	doc, password, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &Service{store: st, doc: doc, initPassword: password}, nil
}

// GeneratedPassword returns the one-time admin password when loading
// created a fresh ledger, and "" when an existing one was opened. Callers
// must report a non-empty value to the operator or the credentials are
// unrecoverable.
func (s *Service) GeneratedPassword() string {
	return s.initPassword
}

// CreateParams holds the identity fields and PIN for a new account.
type CreateParams struct {
	Name    string
	Age     int
	Mobile  string
	Email   string
	Aadhaar string
	PAN     string
	Address string
	Pin     string
}

// CreateAccount validates the identity fields, allocates a unique account
// number, hashes the PIN and appends the new account with a zero balance.
func (s *Service) CreateAccount(p CreateParams) (model.Account, error) {
	if err := validateCreate(p); err != nil {
		return model.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accountNo, err := id.UniqueAccountNumber(func(no string) bool {
		return directory.Exists(s.doc, no)
	})
	if err != nil {
		return model.Account{}, ErrDuplicateAccountNumber
	}

	salt, hash, err := credential.HashPin(p.Pin)
	if err != nil {
		return model.Account{}, fmt.Errorf("hashing PIN: %w", err)
	}

	acct := &model.Account{
		AccountNo:    accountNo,
		Name:         strings.TrimSpace(p.Name),
		Age:          p.Age,
		Mobile:       p.Mobile,
		Email:        p.Email,
		Aadhaar:      p.Aadhaar,
		PAN:          strings.ToUpper(p.PAN),
		Address:      p.Address,
		PinSalt:      salt,
		PinHash:      hash,
		Balance:      decimal.Zero,
		Transactions: []model.Transaction{},
		CreatedAt:    now(),
	}

	s.doc.Accounts = append(s.doc.Accounts, acct)
	if err := s.persist(func() {
		s.doc.Accounts = s.doc.Accounts[:len(s.doc.Accounts)-1]
	}); err != nil {
		return model.Account{}, err
	}

	logger.Log.Infow("account created", "account_no", acct.AccountNo)
	return snapshot(acct), nil
}

// Deposit credits amount to the account and appends a deposit transaction.
func (s *Service) Deposit(accountNo string, amount decimal.Decimal) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return model.Account{}, ErrAccountNotFound
	}
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return model.Account{}, ErrInvalidAmount
	}

	undo := *acct
	acct.Balance = acct.Balance.Add(amount)
	appendTx(acct, model.TxDeposit, amount, "deposit")

	if err := s.persist(func() { *acct = undo }); err != nil {
		return model.Account{}, err
	}
	return snapshot(acct), nil
}

// Withdraw debits amount after PIN verification. Check order fixes the
// user-visible error precedence: lookup, PIN, amount, funds.
func (s *Service) Withdraw(accountNo, pin string, amount decimal.Decimal) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return model.Account{}, ErrAccountNotFound
	}
	if !verifyPin(acct, pin) {
		return model.Account{}, ErrInvalidPin
	}
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return model.Account{}, ErrInvalidAmount
	}
	if amount.GreaterThan(acct.Balance) {
		return model.Account{}, ErrInsufficientFunds
	}

	undo := *acct
	acct.Balance = acct.Balance.Sub(amount)
	appendTx(acct, model.TxWithdraw, amount, "withdraw")

	if err := s.persist(func() { *acct = undo }); err != nil {
		return model.Account{}, err
	}
	return snapshot(acct), nil
}

// Transfer moves amount from one account to another as a single atomic
// unit: both balance changes and both transaction records happen together
// or not at all. Check order: source, destination, same-account, PIN,
// amount, funds.
func (s *Service) Transfer(fromNo, pin, toNo string, amount decimal.Decimal) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := directory.Find(s.doc, fromNo)
	if from == nil {
		return model.Account{}, ErrAccountNotFound
	}
	to := directory.Find(s.doc, toNo)
	if to == nil {
		return model.Account{}, ErrAccountNotFound
	}
	if fromNo == toNo {
		return model.Account{}, ErrSameAccountTransfer
	}
	if !verifyPin(from, pin) {
		return model.Account{}, ErrInvalidPin
	}
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return model.Account{}, ErrInvalidAmount
	}
	if amount.GreaterThan(from.Balance) {
		return model.Account{}, ErrInsufficientFunds
	}

	undoFrom, undoTo := *from, *to
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	appendTx(from, model.TxTransferOut, amount, "to "+toNo)
	appendTx(to, model.TxTransferIn, amount, "from "+fromNo)

	if err := s.persist(func() {
		*from = undoFrom
		*to = undoTo
	}); err != nil {
		return model.Account{}, err
	}

	logger.Log.Infow("transfer completed",
		"from", fromNo, "to", toNo, "amount", amount.StringFixed(2))
	return snapshot(from), nil
}

// InterestQuote is the preview reported before interest is applied.
type InterestQuote struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// InterestPreview computes simple, non-compounding interest on the current
// balance without mutating anything. Application is a separate explicit
// step the caller confirms.
func (s *Service) InterestPreview(accountNo string, rate, years decimal.Decimal) (InterestQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return InterestQuote{}, ErrAccountNotFound
	}
	if err := validateInterestTerms(rate, years); err != nil {
		return InterestQuote{}, err
	}
	return InterestQuote{
		Principal: acct.Balance,
		Interest:  simpleInterest(acct.Balance, rate, years),
	}, nil
}

// ApplyInterest recomputes the interest under the lock, credits it and
// appends an interest transaction.
func (s *Service) ApplyInterest(accountNo string, rate, years decimal.Decimal) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return model.Account{}, ErrAccountNotFound
	}
	if err := validateInterestTerms(rate, years); err != nil {
		return model.Account{}, err
	}

	interest := simpleInterest(acct.Balance, rate, years)
	if interest.Sign() <= 0 {
		// nothing to credit; recorded amounts are always positive
		return snapshot(acct), nil
	}
	undo := *acct
	acct.Balance = acct.Balance.Add(interest)
	appendTx(acct, model.TxInterest, interest,
		fmt.Sprintf("%s%% for %s yrs", rate.String(), years.String()))

	if err := s.persist(func() { *acct = undo }); err != nil {
		return model.Account{}, err
	}
	return snapshot(acct), nil
}

// DeleteAccount removes an account entirely. The caller must echo back the
// exact confirmation token; there is no tombstone and no undo.
func (s *Service) DeleteAccount(accountNo, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return ErrAccountNotFound
	}
	if confirm != DeleteConfirmToken {
		return ErrNotConfirmed
	}

	old := s.doc.Accounts
	kept := make([]*model.Account, 0, len(old)-1)
	for _, a := range old {
		if a.AccountNo != accountNo {
			kept = append(kept, a)
		}
	}
	s.doc.Accounts = kept

	if err := s.persist(func() { s.doc.Accounts = old }); err != nil {
		return err
	}
	logger.Log.Infow("account deleted", "account_no", accountNo)
	return nil
}

// Details returns a PIN-gated snapshot of one account.
func (s *Service) Details(accountNo, pin string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := directory.Find(s.doc, accountNo)
	if acct == nil {
		return model.Account{}, ErrAccountNotFound
	}
	if !verifyPin(acct, pin) {
		return model.Account{}, ErrInvalidPin
	}
	return snapshot(acct), nil
}

// Summary is the listing view of one account: no credential material, no
// transaction history.
type Summary struct {
	AccountNo string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Summaries returns one Summary per account in creation order.
func (s *Service) Summaries() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Summary, 0, len(s.doc.Accounts))
	for _, a := range s.doc.Accounts {
		out = append(out, Summary{
			AccountNo: a.AccountNo,
			Name:      a.Name,
			Balance:   a.Balance,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

// Search returns summaries of accounts matching the query by name or
// account-number substring.
func (s *Service) Search(query string) []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Summary
	for _, a := range directory.Search(s.doc, query) {
		out = append(out, Summary{
			AccountNo: a.AccountNo,
			Name:      a.Name,
			Balance:   a.Balance,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

// Totals reports the account count and the sum of all balances.
func (s *Service) Totals() (int, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, a := range s.doc.Accounts {
		total = total.Add(a.Balance)
	}
	return len(s.doc.Accounts), total
}

// AdminCredentials returns the stored admin credentials.
func (s *Service) AdminCredentials() model.AdminCredentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Meta.Admin
}

// SetAdminCredentials replaces the admin credentials and persists.
func (s *Service) SetAdminCredentials(creds model.AdminCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	undo := s.doc.Meta.Admin
	s.doc.Meta.Admin = creds
	return s.persist(func() { s.doc.Meta.Admin = undo })
}

// Export writes a timestamped copy of the document into dir and returns
// the created path.
func (s *Service) Export(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Export(s.doc, dir)
}

// persist saves the whole document. On failure the supplied rollback is
// run so the in-memory state never runs ahead of the file, and the
// operation reports as not committed.
func (s *Service) persist(rollback func()) error {
	if err := s.store.Save(s.doc); err != nil {
		rollback()
		logger.Log.Errorw("ledger save failed, mutation rolled back", "error", err)
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

func verifyPin(acct *model.Account, pin string) bool {
	if !validPinFormat(pin) {
		return false
	}
	return credential.VerifyPin(pin, acct.PinSalt, acct.PinHash)
}

// appendTx records one immutable transaction. BalanceAfter is always taken
// from the account's balance at append time, never supplied by callers.
func appendTx(acct *model.Account, kind model.TxType, amount decimal.Decimal, note string) {
	acct.Transactions = append(acct.Transactions, model.Transaction{
		ID:           id.TransactionID(),
		Type:         kind,
		Amount:       amount,
		BalanceAfter: acct.Balance,
		Note:         note,
		Timestamp:    now(),
	})
}

func validateInterestTerms(rate, years decimal.Decimal) error {
	if rate.Sign() < 0 {
		return ErrInvalidRate
	}
	if years.Sign() <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// simpleInterest is balance * (rate/100) * years, rounded to cents.
func simpleInterest(balance, rate, years decimal.Decimal) decimal.Decimal {
	return balance.Mul(rate).Div(hundred).Mul(years).Round(2)
}

// snapshot returns a value copy with its own transactions slice, so
// callers can never mutate engine-owned state.
func snapshot(a *model.Account) model.Account {
	cp := *a
	cp.Transactions = append([]model.Transaction(nil), a.Transactions...)
	return cp
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
