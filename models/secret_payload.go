package models

// SecretPayload is the plaintext structure encrypted into a vault entry.
// It exists only in client memory: after a reveal it lives in the session
// cache until the vault is locked, and it is never persisted, transmitted,
// or logged.
type SecretPayload struct {
	// Label is the human-readable account label (e.g. "bank").
	Label string `json:"label"`

	// URL is the optional service address.
	URL string `json:"url,omitempty"`

	// Username is the optional account identifier at the service.
	Username string `json:"username,omitempty"`

	// Secret is the credential itself.
	Secret string `json:"secret"`
}
