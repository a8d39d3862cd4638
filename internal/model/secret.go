package model

// SecretHasher derives the stored form of a password and checks
// submitted passwords against it.
type SecretHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, stored string) (bool, error)
}
