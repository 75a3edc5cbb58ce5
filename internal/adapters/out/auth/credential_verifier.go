// Package auth provides the office login credential check and the JWT
// token service securing the admin surface.
package auth

import "crypto/subtle"

// StaticCredentialVerifier checks submitted credentials against the single
// office account from configuration. Comparison is constant time.
type StaticCredentialVerifier struct {
	username string
	password string
}

// NewStaticCredentialVerifier creates a verifier for the configured account.
func NewStaticCredentialVerifier(username, password string) *StaticCredentialVerifier {
	return &StaticCredentialVerifier{username: username, password: password}
}

// Verify reports whether the submitted credentials match the configured
// account.
func (v *StaticCredentialVerifier) Verify(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(v.username), []byte(username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(v.password), []byte(password)) == 1
	return userMatch && passMatch
}
