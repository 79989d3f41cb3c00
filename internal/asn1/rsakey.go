package asn1

import "errors"

// ErrInvalidKey is returned when the DER payload parses but does not
// have the SubjectPublicKeyInfo/RSAPublicKey shape spec.md §4.4
// requires, or carries an algorithm OID other than RSA.
var ErrInvalidKey = errors.New("asn1: invalid RSA public key")

// rsaOID is 1.2.840.113549.1.1.1, the rsaEncryption algorithm
// identifier. Any other OID (including 1.2.840.113549.1.1.7, the
// RSA-OAEP algorithm identifier) is rejected, per spec.md §8 property 8.
const rsaOID = "1.2.840.113549.1.1.1"

var subjectPublicKeyInfoTemplate = Template{
	Class: ClassUniversal, Tag: TagSequence, Constructed: true,
	Children: []Template{
		{ // AlgorithmIdentifier
			Class: ClassUniversal, Tag: TagSequence, Constructed: true,
			Children: []Template{
				{Class: ClassUniversal, Tag: TagOID},
				{Class: ClassUniversal, Tag: TagNull},
			},
		},
		{ // subjectPublicKey, expected to hold a nested RSAPublicKey
			Class: ClassUniversal, Tag: TagBitString, Constructed: true,
			Children: []Template{
				{
					Class: ClassUniversal, Tag: TagSequence, Constructed: true,
					Children: []Template{
						{Class: ClassUniversal, Tag: TagInteger},
						{Class: ClassUniversal, Tag: TagInteger},
					},
				},
			},
		},
	},
}

// ExtractRSAPublicKey parses der as a SubjectPublicKeyInfo and returns
// the raw big-endian modulus and public exponent octets from the
// nested RSAPublicKey. It fails with ErrInvalidKey on any structural
// mismatch or non-RSA algorithm OID, and with ErrMalformed if der is
// not valid DER at all.
func ExtractRSAPublicKey(der []byte) (modulus, exponent []byte, err error) {
	root, err := ParseDER(der)
	if err != nil {
		return nil, nil, err
	}
	if !Match(root, subjectPublicKeyInfoTemplate) {
		return nil, nil, ErrInvalidKey
	}

	algSeq := root.Children[0]
	oid, err := algSeq.Children[0].OID()
	if err != nil {
		return nil, nil, ErrInvalidKey
	}
	if oid != rsaOID {
		return nil, nil, ErrInvalidKey
	}

	rsaPubKey := root.Children[1].Children[0]
	modulus = stripLeadingSignByte(rsaPubKey.Children[0].Value)
	exponent = stripLeadingSignByte(rsaPubKey.Children[1].Value)
	if len(modulus) == 0 || len(exponent) == 0 {
		return nil, nil, ErrInvalidKey
	}
	return modulus, exponent, nil
}

// stripLeadingSignByte removes the single 0x00 octet DER prepends to
// an INTEGER whose most significant bit would otherwise be
// mistaken for a sign bit. RSA moduli and exponents are always
// non-negative, so this byte carries no information once removed.
func stripLeadingSignByte(v []byte) []byte {
	if len(v) > 1 && v[0] == 0x00 && v[1]&0x80 != 0 {
		return v[1:]
	}
	return v
}
