// Package password implements the storage strategies for local credentials.
//
// Exactly one strategy is active per deployment. Bcrypt is the baseline;
// the encrypted and plaintext modes exist for data created by older
// deployments and should not be chosen for new ones.
package password

import (
	"encoding/base64"
	"fmt"

	"github.com/dtroode/secrets-server/internal/model"
)

// Mode names a secret storage strategy.
type Mode string

const (
	// ModeBcrypt stores a salted bcrypt hash.
	ModeBcrypt Mode = "bcrypt"
	// ModeAESGCM stores the password encrypted with a server key.
	ModeAESGCM Mode = "aes-gcm"
	// ModePlaintext stores the password as is.
	ModePlaintext Mode = "plaintext"
)

// Options configures the strategy selected by Mode.
type Options struct {
	BcryptCost int
	// EncryptionKey is the base64-encoded 32-byte key for ModeAESGCM.
	EncryptionKey string
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeBcrypt, ModeAESGCM, ModePlaintext:
		return m, nil
	default:
		return "", fmt.Errorf("unknown password mode %q", s)
	}
}

// New returns the hasher implementing mode.
func New(mode Mode, opts Options) (model.SecretHasher, error) {
	switch mode {
	case ModeBcrypt:
		return NewBcrypt(opts.BcryptCost)
	case ModeAESGCM:
		key, err := base64.StdEncoding.DecodeString(opts.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode encryption key: %w", err)
		}
		return NewCipher(key)
	case ModePlaintext:
		return NewPlaintext(), nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}
