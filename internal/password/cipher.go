package password

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

const keySize = 32

// Cipher stores secrets encrypted with AES-256-GCM.
// The stored form is base64(nonce || ciphertext).
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher creates a Cipher from a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Hash encrypts plain with a fresh random nonce.
func (c *Cipher) Hash(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Verify decrypts stored and compares it with plain in constant time.
func (c *Cipher) Verify(plain, stored string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false, fmt.Errorf("failed to decode stored secret: %w", err)
	}
	if len(raw) < c.aead.NonceSize() {
		return false, fmt.Errorf("stored secret too short")
	}

	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	decrypted, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return false, fmt.Errorf("failed to decrypt stored secret: %w", err)
	}

	return subtle.ConstantTimeCompare(decrypted, []byte(plain)) == 1, nil
}
