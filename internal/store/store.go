// Package store persists the whole ledger document as one human-readable
// JSON file, using atomic replace-on-write so a crash mid-save never
// leaves a truncated file behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bankpro-dev/bankpro/internal/credential"
	"github.com/bankpro-dev/bankpro/internal/logger"
	"github.com/bankpro-dev/bankpro/internal/model"
)

// DefaultAdminUsername is the username assigned to a freshly initialized
// ledger. The matching password is generated randomly and reported once.
const DefaultAdminUsername = "admin"

const timestampFormat = "20060102150405"

// Store reads and writes the ledger document at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given ledger file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current ledger document. A missing file yields a fresh
// empty document. An unparsable file is quarantined under a timestamped
// .corrupt name and replaced with a fresh document; the original stays on
// disk for forensic recovery, so corruption is never fatal to the caller.
// When a fresh document was created, the second return value carries the
// one-time generated admin password for the caller to report; it is empty
// when an existing file was loaded.
func (s *Store) Load() (*model.Document, string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc, password, err := s.Initialize()
		if err != nil {
			return nil, "", err
		}
		logger.Log.Warnw("no ledger found, initialized a fresh one", "path", s.path)
		return doc, password, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading ledger: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		quarantine := s.quarantinePath(time.Now().UTC())
		if renameErr := os.Rename(s.path, quarantine); renameErr != nil {
			return nil, "", fmt.Errorf("quarantining corrupt ledger: %w", renameErr)
		}
		logger.Log.Warnw("ledger unreadable, quarantined and reinitialized",
			"quarantine", quarantine, "parse_error", err)

		fresh, password, initErr := s.Initialize()
		if initErr != nil {
			return nil, "", initErr
		}
		return fresh, password, nil
	}
	return &doc, "", nil
}

// Initialize writes a fresh empty document with freshly generated admin
// credentials and returns it along with the one-time plaintext password.
func (s *Store) Initialize() (*model.Document, string, error) {
	password, err := credential.RandomPassword()
	if err != nil {
		return nil, "", err
	}
	hash, err := credential.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	doc := &model.Document{
		Meta: model.Meta{
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			Admin: model.AdminCredentials{
				Username:     DefaultAdminUsername,
				PasswordHash: hash,
			},
		},
		Accounts: []*model.Account{},
	}
	if err := s.Save(doc); err != nil {
		return nil, "", err
	}
	return doc, password, nil
}

// Save persists the full document atomically: the JSON is written to a
// temporary file next to the target, then renamed into place.
func (s *Store) Save(doc *model.Document) error {
	return writeAtomic(s.path, doc)
}

// Export writes a timestamped copy of the document into dir for
// backup/audit and returns the created path.
func (s *Store) Export(doc *model.Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	name := fmt.Sprintf("bank_db_export_%s.json", time.Now().UTC().Format(timestampFormat))
	path := filepath.Join(dir, name)
	if err := writeAtomic(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) quarantinePath(now time.Time) string {
	base := strings.TrimSuffix(s.path, ".json")
	return fmt.Sprintf("%s.corrupt.%s.json", base, now.Format(timestampFormat))
}

func writeAtomic(path string, doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
