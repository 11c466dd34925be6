// Package admin exposes the administrative operations: bulk listing,
// deletion, credential rotation, totals and export. Every operation works
// on the same in-memory document as the transaction engine.
package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankpro-dev/bankpro/internal/auditlog"
	"github.com/bankpro-dev/bankpro/internal/credential"
	"github.com/bankpro-dev/bankpro/internal/ledger"
	"github.com/bankpro-dev/bankpro/internal/logger"
	"github.com/bankpro-dev/bankpro/internal/model"
)

// ErrAuthFailed is returned on any admin credential mismatch.
var ErrAuthFailed = errors.New("admin authentication failed")

// ErrInvalidCredentials is returned when rotating to blank credentials.
var ErrInvalidCredentials = errors.New("username and password must not be empty")

// Service wraps the ledger with admin-only operations and an audit trail.
type Service struct {
	ledger    *ledger.Service
	auditPath string // empty disables the audit log
}

// NewService creates an admin Service over the shared ledger.
func NewService(led *ledger.Service, auditPath string) *Service {
	return &Service{ledger: led, auditPath: auditPath}
}

// Authenticate checks the supplied credentials against the document's
// stored admin username and bcrypt password hash.
func (s *Service) Authenticate(username, password string) error {
	creds := s.ledger.AdminCredentials()
	if username != creds.Username || !credential.VerifyPassword(password, creds.PasswordHash) {
		return ErrAuthFailed
	}
	return nil
}

// ListAccounts returns a summary of every account in creation order.
func (s *Service) ListAccounts() []ledger.Summary {
	return s.ledger.Summaries()
}

// Totals reports the account count and aggregate balance across the bank.
func (s *Service) Totals() (int, decimal.Decimal) {
	return s.ledger.Totals()
}

// DeleteAccount removes an account after the exact confirmation token and
// records the action in the audit log.
func (s *Service) DeleteAccount(actor, accountNo, confirm string) error {
	if err := s.ledger.DeleteAccount(accountNo, confirm); err != nil {
		return err
	}
	s.audit(actor, "delete", accountNo)
	return nil
}

// RotateCredentials replaces the admin username and password. The password
// is stored hashed, never in recoverable form.
func (s *Service) RotateCredentials(actor, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidCredentials
	}

	hash, err := credential.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.ledger.SetAdminCredentials(model.AdminCredentials{
		Username:     username,
		PasswordHash: hash,
	}); err != nil {
		return err
	}
	s.audit(actor, "rotate", "admin credentials updated")
	return nil
}

// Export writes a timestamped copy of the full document into dir and
// returns the created path.
func (s *Service) Export(actor, dir string) (string, error) {
	path, err := s.ledger.Export(dir)
	if err != nil {
		return "", err
	}
	s.audit(actor, "export", path)
	return path, nil
}

// audit appends one entry; audit failures are reported but never block
// the administrative operation itself.
func (s *Service) audit(actor, action, detail string) {
	if s.auditPath == "" {
		return
	}
	err := auditlog.Append(s.auditPath, []auditlog.Entry{{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	}})
	if err != nil {
		logger.Log.Warnw("failed to write audit log", "error", err)
	}
}
