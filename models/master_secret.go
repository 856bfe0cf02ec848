package models

// MasterSecretRecord is the only vault-related data the server ever stores
// about a user's master password. Both fields are base64 (std encoding):
// Salt decodes to 16 bytes, VerificationHash to 32 bytes.
//
// The record is write-once: created the first time the user sets a master
// password and immutable for the lifetime of the profile. There is no update
// path: the master password cannot be changed or recovered.
//
// VerificationHash is SHA-256 of the derived key, not the key itself. Full
// read access to this record yields no decryption capability: the key can be
// reproduced only by re-running the KDF with the user-held password.
type MasterSecretRecord struct {
	Salt             string `json:"salt"`
	VerificationHash string `json:"verification_hash"`
}

// IsZero reports whether the record is absent (no master password set yet).
func (r MasterSecretRecord) IsZero() bool {
	return r.Salt == "" && r.VerificationHash == ""
}

// TableName returns the name of the database table
// associated with the MasterSecretRecord model.
func (r MasterSecretRecord) TableName() string {
	return "profiles"
}
