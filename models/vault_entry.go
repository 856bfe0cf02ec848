package models

import "time"

// VaultEntry is an opaque encrypted credential record. The server stores and
// returns it without any ability to inspect the content: IV and Ciphertext
// are base64 (std encoding) byte strings produced client-side, and no
// server-side decryption capability exists.
//
// The IV is unique per encryption operation: generated fresh for every
// create and never reused, so no two entries ever share an IV.
type VaultEntry struct {
	// ID is the server-assigned UUID of the entry.
	ID string `json:"id"`

	// OwnerID is the account that owns the entry. Populated server-side from
	// the authenticated request; entries are only ever listed per owner.
	OwnerID int64 `json:"-"`

	// IV is the base64-encoded 12-byte AES-GCM initialization vector.
	IV string `json:"iv"`

	// Ciphertext is the base64-encoded AEAD output (ciphertext plus the
	// 16-byte authentication tag).
	Ciphertext string `json:"ciphertext"`

	// CreatedAt is the server-assigned creation timestamp. Entries are
	// listed newest first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (e VaultEntry) TableName() string {
	return "vault_entries"
}
