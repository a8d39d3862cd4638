package password

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/secrets-server/internal/model"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, keySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func hashers(t *testing.T) map[Mode]model.SecretHasher {
	t.Helper()

	b, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)
	c, err := NewCipher(randomKey(t))
	require.NoError(t, err)

	return map[Mode]model.SecretHasher{
		ModeBcrypt:    b,
		ModeAESGCM:    c,
		ModePlaintext: NewPlaintext(),
	}
}

func TestHashers_RoundTrip(t *testing.T) {
	secrets := []string{"password", "p@ss w0rd", "пароль", "x"}

	for mode, h := range hashers(t) {
		t.Run(string(mode), func(t *testing.T) {
			for _, secret := range secrets {
				stored, err := h.Hash(secret)
				require.NoError(t, err)

				ok, err := h.Verify(secret, stored)
				require.NoError(t, err)
				assert.True(t, ok, "secret %q should verify", secret)

				ok, err = h.Verify(secret+"!", stored)
				require.NoError(t, err)
				assert.False(t, ok, "different secret must not verify")
			}
		})
	}
}

func TestBcrypt_SaltsEachHash(t *testing.T) {
	b, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := b.Hash("password")
	require.NoError(t, err)
	second, err := b.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "password")
}

func TestBcrypt_TooLong(t *testing.T) {
	b, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	// 40 runes, 80 bytes
	_, err = b.Hash(strings.Repeat("я", 40))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = b.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestBcrypt_Cost(t *testing.T) {
	b, err := NewBcrypt(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, b.cost)

	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestBcrypt_VerifyMalformedHash(t *testing.T) {
	b, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := b.Verify("password", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCipher_KeyLength(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	assert.Error(t, err)
}

func TestCipher_RandomNonce(t *testing.T) {
	c, err := NewCipher(randomKey(t))
	require.NoError(t, err)

	first, err := c.Hash("password")
	require.NoError(t, err)
	second, err := c.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_VerifyWithOtherKey(t *testing.T) {
	c1, err := NewCipher(randomKey(t))
	require.NoError(t, err)
	c2, err := NewCipher(randomKey(t))
	require.NoError(t, err)

	stored, err := c1.Hash("password")
	require.NoError(t, err)

	ok, err := c2.Verify("password", stored)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCipher_VerifyCorrupted(t *testing.T) {
	c, err := NewCipher(randomKey(t))
	require.NoError(t, err)

	_, err = c.Verify("password", "%%%")
	assert.Error(t, err)

	_, err = c.Verify("password", base64.StdEncoding.EncodeToString([]byte("abc")))
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "bcrypt", want: ModeBcrypt},
		{in: "aes-gcm", want: ModeAESGCM},
		{in: "plaintext", want: ModePlaintext},
		{in: "md5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(randomKey(t))

	h, err := New(ModeBcrypt, Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.IsType(t, &Bcrypt{}, h)

	h, err = New(ModeAESGCM, Options{EncryptionKey: key})
	require.NoError(t, err)
	assert.IsType(t, &Cipher{}, h)

	h, err = New(ModePlaintext, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Plaintext{}, h)

	_, err = New(ModeAESGCM, Options{EncryptionKey: "not base64!"})
	assert.Error(t, err)

	_, err = New(ModeAESGCM, Options{})
	assert.Error(t, err)

	_, err = New(Mode("rot13"), Options{})
	assert.Error(t, err)
}
