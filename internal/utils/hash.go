package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes a keyed HMAC-SHA256 digest of data and returns it
// hex-encoded. Used for account password hashing on the server; vault
// content never goes through here.
func HashString(data, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
