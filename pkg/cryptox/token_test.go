package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	for _, size := range []int{TokenSize128, TokenSize256, 24} {
		a, err := GenerateToken(size)
		require.NoError(t, err)
		b, err := GenerateToken(size)
		require.NoError(t, err)

		require.NotEmpty(t, a)
		require.NotEqual(t, a, b, "tokens should be unique")
	}

	_, err := GenerateToken(0)
	require.Error(t, err)
	_, err = GenerateToken(-1)
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	fp := FingerprintToken("token-1")

	require.Equal(t, fp, FingerprintToken("token-1"), "fingerprint should be deterministic")
	require.NotEqual(t, fp, FingerprintToken("token-2"))
	require.Len(t, fp, 43)
}

func TestNewOpaqueToken(t *testing.T) {
	token, fp, err := NewOpaqueToken()
	require.NoError(t, err)
	require.Len(t, token, 43)
	require.Equal(t, FingerprintToken(token), fp)
}

func TestLoadOrCreateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := LoadOrCreateSecret(path, 32)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Second call reads the same value back.
	second, err := LoadOrCreateSecret(path, 32)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))
	_, err = LoadOrCreateSecret(path, 32)
	require.Error(t, err)
}
