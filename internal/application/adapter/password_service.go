// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes credentials for storage and checks candidates
// against stored hashes. Plaintext passwords never leave this boundary.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum length.
	ValidatePasswordStrength(password string) error
}
