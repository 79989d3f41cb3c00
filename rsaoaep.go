// Package rsaoaep implements RSAES-OAEP public-key encryption without
// relying on any host-provided cryptographic API: message digests,
// arbitrary-precision arithmetic, PEM/ASN.1 parsing, and the CSPRNG
// feeding the OAEP seed are all implemented from scratch in this
// module's internal packages. Only an RSA public key and a plaintext
// go in; a ciphertext of exactly the modulus's byte length comes out.
package rsaoaep

import (
	"errors"
	"fmt"

	"github.com/JiangJie/rsa-oaep-encryption/internal/asn1"
	"github.com/JiangJie/rsa-oaep-encryption/internal/bigint"
	"github.com/JiangJie/rsa-oaep-encryption/internal/csprng"
	"github.com/JiangJie/rsa-oaep-encryption/internal/digest"
	"github.com/JiangJie/rsa-oaep-encryption/internal/oaep"
	"github.com/JiangJie/rsa-oaep-encryption/internal/pemreader"
)

// Error is a sentinel error string, following
// home-orbit-go-blob-encryption's errors.go pattern: a handful of
// named constants a caller can compare against with errors.Is,
// without this package exporting a struct hierarchy.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidPEM indicates the input was not well-formed PEM armor.
	ErrInvalidPEM = Error("rsaoaep: invalid PEM armor")
	// ErrInvalidKey indicates the PEM body did not decode to a
	// SubjectPublicKeyInfo wrapping an RSA public key.
	ErrInvalidKey = Error("rsaoaep: invalid RSA public key")
	// ErrUnsupportedHash indicates a Hash value outside
	// SHA1/SHA256/SHA384/SHA512 was passed to Encrypt.
	ErrUnsupportedHash = Error("rsaoaep: unsupported hash")
	// ErrMessageTooLong indicates the plaintext does not fit the
	// modulus/hash combination; see PublicKey.Encrypt.
	ErrMessageTooLong = Error("rsaoaep: message too long for this key and hash")
	// ErrEntropyFailure indicates the CSPRNG could not be seeded from
	// the OS entropy source.
	ErrEntropyFailure = Error("rsaoaep: entropy source failure")
)

// Hash selects the message digest used as both the OAEP label hash
// and the MGF1 hash, per spec.md §1's four supported algorithms.
type Hash int

const (
	hashUnset Hash = iota
	HashSHA1
	HashSHA256
	HashSHA384
	HashSHA512
)

func (h Hash) newDigest() (oaep.Hash, error) {
	switch h {
	case HashSHA1:
		return digest.NewSHA1(), nil
	case HashSHA256:
		return digest.NewSHA256(), nil
	case HashSHA384:
		return digest.NewSHA384(), nil
	case HashSHA512:
		return digest.NewSHA512(), nil
	default:
		return nil, ErrUnsupportedHash
	}
}

// SHA1, SHA256, SHA384, and SHA512 select the corresponding digest
// for PublicKey.Encrypt.
func SHA1() Hash   { return HashSHA1 }
func SHA256() Hash { return HashSHA256 }
func SHA384() Hash { return HashSHA384 }
func SHA512() Hash { return HashSHA512 }

// PublicKey is an imported RSA public key ready to encrypt plaintexts
// with RSAES-OAEP. It holds no private material and is safe to keep
// around and reuse across many Encrypt calls.
type PublicKey struct {
	n   *bigint.Int
	e   *bigint.Int
	gen *csprng.Generator
}

// ImportPublicKey decodes a PEM-encoded SubjectPublicKeyInfo (the
// "PUBLIC KEY" PEM label) wrapping an RSA public key and returns a
// PublicKey ready for Encrypt, per spec.md §4.8's single entry point.
func ImportPublicKey(pem string) (*PublicKey, error) {
	der, err := pemreader.Decode(pem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPEM, err)
	}

	modulus, exponent, err := asn1.ExtractRSAPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	gen, err := csprng.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyFailure, err)
	}

	return &PublicKey{
		n:   bigint.FromBytes(modulus),
		e:   bigint.FromBytes(exponent),
		gen: gen,
	}, nil
}

// Encrypt runs RSAES-OAEP (RFC 8017 §7.1) over plaintext using h as
// both the label hash and the MGF1 hash, against the empty label, and
// returns a ciphertext of exactly ceil(bitlen(n)/8) bytes.
//
// spec.md §4.8 notes the source this is ported from treats the
// plaintext as a "binary-encoded string" — each character's low 8
// bits is one byte. This port instead takes a byte slice directly, as
// spec.md recommends for typed-language implementations.
func (k *PublicKey) Encrypt(plaintext []byte, h Hash) ([]byte, error) {
	d, err := h.newDigest()
	if err != nil {
		return nil, err
	}

	ct, err := oaep.Encode(k.n, k.e, plaintext, d, k.gen)
	if err != nil {
		if errors.Is(err, oaep.ErrMessageTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrMessageTooLong, err)
		}
		return nil, err
	}
	return ct, nil
}
