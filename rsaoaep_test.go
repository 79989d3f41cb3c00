package rsaoaep

import (
	stdrand "crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	stdx509 "crypto/x509"
	"encoding/pem"
	"hash"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genKeyPEM builds a fresh host RSA keypair and returns its private
// key (used only as a decrypt oracle in assertions) and its public
// key PEM-armored as a PKIX SubjectPublicKeyInfo — the shape
// ImportPublicKey must accept. None of rsaoaep's own code touches
// crypto/rsa, crypto/x509, or encoding/pem; that is confined to this
// test file.
func genKeyPEM(t *testing.T, bits int) (*stdrsa.PrivateKey, string) {
	t.Helper()
	priv, err := stdrsa.GenerateKey(stdrand.Reader, bits)
	require.NoError(t, err)

	der, err := stdx509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return priv, string(pem.EncodeToMemory(block))
}

func stdHashFor(h Hash) func() hash.Hash {
	switch h {
	case HashSHA1:
		return sha1.New
	case HashSHA256:
		return sha256.New
	case HashSHA384:
		return sha512.New384
	case HashSHA512:
		return sha512.New
	default:
		return nil
	}
}

func TestEncryptRoundTripsForEverySupportedHash(t *testing.T) {
	t.Parallel()
	priv, pemKey := genKeyPEM(t, 2048)

	pub, err := ImportPublicKey(pemKey)
	require.NoError(t, err)

	for _, h := range []Hash{SHA1(), SHA256(), SHA384(), SHA512()} {
		h := h
		for _, pt := range [][]byte{{}, []byte("x"), []byte("a round-trip message")} {
			ct, err := pub.Encrypt(pt, h)
			require.NoError(t, err)
			assert.Len(t, ct, 256)

			got, err := stdrsa.DecryptOAEP(stdHashFor(h)(), nil, priv, ct, nil)
			require.NoError(t, err)
			assert.Equal(t, pt, got)
		}
	}
}

func TestEncryptRejectsUnsupportedHash(t *testing.T) {
	t.Parallel()
	_, pemKey := genKeyPEM(t, 1024)
	pub, err := ImportPublicKey(pemKey)
	require.NoError(t, err)

	_, err = pub.Encrypt([]byte("x"), hashUnset)
	assert.ErrorIs(t, err, ErrUnsupportedHash)
}

func TestEncryptRejectsOverlongMessage(t *testing.T) {
	t.Parallel()
	_, pemKey := genKeyPEM(t, 1024)
	pub, err := ImportPublicKey(pemKey)
	require.NoError(t, err)

	// k=128, hLen=32 (SHA-256): max mLen = 128 - 64 - 2 = 62.
	_, err = pub.Encrypt(make([]byte, 63), SHA256())
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestEncryptAtBoundaryLengths(t *testing.T) {
	t.Parallel()
	priv, pemKey := genKeyPEM(t, 1024)
	pub, err := ImportPublicKey(pemKey)
	require.NoError(t, err)

	// k=128, hLen=32: boundary mLen values are 0, hLen, and k-2hLen-2.
	for _, n := range []int{0, 32, 62} {
		pt := make([]byte, n)
		for i := range pt {
			pt[i] = byte(i)
		}
		ct, err := pub.Encrypt(pt, SHA256())
		require.NoError(t, err)

		got, err := stdrsa.DecryptOAEP(sha256.New(), nil, priv, ct, nil)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestImportPublicKeyRejectsTruncatedArmor(t *testing.T) {
	t.Parallel()
	_, pemKey := genKeyPEM(t, 1024)
	truncated := pemKey[:len(pemKey)/2]

	_, err := ImportPublicKey(truncated)
	assert.ErrorIs(t, err, ErrInvalidPEM)
}

func TestImportPublicKeyRejectsMismatchedLabel(t *testing.T) {
	t.Parallel()
	_, pemKey := genKeyPEM(t, 1024)
	mangled := strings.ReplaceAll(pemKey, "PUBLIC KEY", "public key")

	_, err := ImportPublicKey(mangled)
	assert.ErrorIs(t, err, ErrInvalidPEM)
}

func TestImportPublicKeyRejectsNonKeyDER(t *testing.T) {
	t.Parallel()
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: []byte{0x02, 0x01, 0x05}}
	notAKey := string(pem.EncodeToMemory(block))

	_, err := ImportPublicKey(notAKey)
	assert.ErrorIs(t, err, ErrInvalidKey)
}
