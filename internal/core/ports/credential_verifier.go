package ports

// CredentialVerifier checks back-office credentials at the boundary. The
// lifecycle core never learns how authentication is performed; the HTTP
// adapter consumes this capability and the composition root supplies it.
type CredentialVerifier interface {
	Verify(username, password string) bool
}
