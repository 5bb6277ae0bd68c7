// Package signature verifies inbound webhook HMAC signatures.
//
// The channel signs the exact request body bytes with a shared secret and
// sends "HMAC " + base64(HMAC-SHA256(secret, body)) in the authorization
// header. Verification must therefore run over the raw received bytes,
// never over parsed-and-reserialized JSON
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Prefix is the scheme tag the channel puts in front of the digest
const Prefix = "HMAC "

// Sign computes the authorization header value for body under the
// base64-encoded secret. Used by tests and the local replay tool
func Sign(secretB64 string, body []byte) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return Prefix + base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify reports whether authHeader matches the HMAC of body under the
// base64-encoded secret. Malformed input of any kind yields false, never
// an error
func Verify(secretB64 string, body []byte, authHeader string) bool {
	if secretB64 == "" || authHeader == "" {
		return false
	}
	want, err := Sign(secretB64, body)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(want), []byte(authHeader))
}
