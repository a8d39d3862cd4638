package password

import "crypto/subtle"

// Plaintext keeps secrets as submitted.
//
// Deprecated: only for reading accounts created by legacy deployments.
type Plaintext struct{}

// NewPlaintext creates a Plaintext strategy.
func NewPlaintext() *Plaintext {
	return &Plaintext{}
}

// Hash returns plain unchanged.
func (Plaintext) Hash(plain string) (string, error) {
	return plain, nil
}

// Verify compares plain with stored.
func (Plaintext) Verify(plain, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1, nil
}
