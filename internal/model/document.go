package model

import "time"

// Document is the root aggregate persisted as one JSON file. A running
// process owns the whole document for the duration of a session.
type Document struct {
	Meta     Meta       `json:"meta"`
	Accounts []*Account `json:"accounts"`
}

// Meta holds document-level metadata and the admin credentials.
type Meta struct {
	CreatedAt time.Time        `json:"created_at"`
	Admin     AdminCredentials `json:"admin"`
}

// AdminCredentials gate administrative operations. The password is stored
// bcrypt-hashed, never in recoverable form.
type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
