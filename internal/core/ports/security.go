package ports

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches storedHash. Malformed hashes never match.
	Verify(plaintext, storedHash string) bool
}

// TokenIssuer signs time-bounded identity tokens.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// TokenVerifier validates a presented token and resolves its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
