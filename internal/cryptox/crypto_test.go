package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSHA256_KnownVector(t *testing.T) {
	// sha256("admin123")
	want := "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	assert.Equal(t, want, HashSHA256([]byte("admin123")))
}

func TestHashSHA256_Deterministic(t *testing.T) {
	a := HashSHA256([]byte("hunter2"))
	b := HashSHA256([]byte("hunter2"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.Equal(t, strings.ToLower(a), a)
}

func TestVerify_RoundTripAndMismatch(t *testing.T) {
	passwords := []string{"", "a", "admin123", "correct horse battery staple", "пароль"}

	for _, p := range passwords {
		h := HashSHA256([]byte(p))
		assert.True(t, Verify([]byte(p), h), "verify(%q, hash(%q))", p, p)

		for _, q := range passwords {
			if q == p {
				continue
			}
			assert.False(t, Verify([]byte(q), h), "verify(%q, hash(%q))", q, p)
		}
	}
}

func TestVerify_GarbageStoredValue(t *testing.T) {
	assert.False(t, Verify([]byte("x"), ""))
	assert.False(t, Verify([]byte("x"), "not-a-hash"))
	assert.False(t, Verify([]byte("x"), "$2a$broken"))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(SchemeSHA256)
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher("")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher(SchemeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = NewHasher("md5")
	require.Error(t, err)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	stored, err := h.Hash([]byte("secret"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "$2"))

	assert.True(t, h.Verify([]byte("secret"), stored))
	assert.False(t, h.Verify([]byte("Secret"), stored))
}

func TestHashers_VerifyEachOthersHashes(t *testing.T) {
	legacy := SHA256Hasher{}
	strong := BcryptHasher{Cost: bcrypt.MinCost}

	old, err := legacy.Hash([]byte("pw"))
	require.NoError(t, err)
	fresh, err := strong.Hash([]byte("pw"))
	require.NoError(t, err)

	assert.True(t, strong.Verify([]byte("pw"), old))
	assert.True(t, legacy.Verify([]byte("pw"), fresh))
}
