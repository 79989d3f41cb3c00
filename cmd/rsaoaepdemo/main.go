// Command rsaoaepdemo loads a PEM-encoded RSA public key and encrypts
// a plaintext with RSAES-OAEP, printing the ciphertext as hex.
//
// Grounded on github.com/blck-snwmn/toyrsa/cmd/main.go's side-by-side
// demo structure: there it compares toyrsa's output against
// crypto/rsa's; here the -verify flag does the same against
// crypto/rsa.EncryptOAEP's matching decrypt, to give a developer a
// quick sanity check without reaching for a test file. This command
// is not part of rsaoaep's import graph.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"hash"
	"os"

	"github.com/JiangJie/rsa-oaep-encryption"
)

func main() {
	var (
		keyPath   = flag.String("key", "", "path to a PEM-encoded RSA public key (required)")
		plaintext = flag.String("plaintext", "", "plaintext to encrypt")
		hashName  = flag.String("hash", "sha256", "one of sha1, sha256, sha384, sha512")
		verify    = flag.Bool("verify", false, "generate a throwaway keypair and round-trip through crypto/rsa instead of -key")
	)
	flag.Parse()

	h, err := hashByName(*hashName)
	if err != nil {
		fatal(err)
	}

	if *verify {
		runVerify(h)
		return
	}

	if *keyPath == "" {
		fatal(fmt.Errorf("rsaoaepdemo: -key is required (or pass -verify)"))
	}
	pemBytes, err := os.ReadFile(*keyPath)
	if err != nil {
		fatal(err)
	}

	pub, err := rsaoaep.ImportPublicKey(string(pemBytes))
	if err != nil {
		fatal(err)
	}

	ciphertext, err := pub.Encrypt([]byte(*plaintext), h)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%x\n", ciphertext)
}

func hashByName(name string) (rsaoaep.Hash, error) {
	switch name {
	case "sha1":
		return rsaoaep.SHA1(), nil
	case "sha256":
		return rsaoaep.SHA256(), nil
	case "sha384":
		return rsaoaep.SHA384(), nil
	case "sha512":
		return rsaoaep.SHA512(), nil
	default:
		return 0, fmt.Errorf("rsaoaepdemo: unknown hash %q", name)
	}
}

// runVerify generates a throwaway keypair with crypto/rsa (developer
// convenience only — never used by rsaoaep itself), encrypts with
// this module's encoder, and decrypts with crypto/rsa.DecryptOAEP to
// confirm the two implementations agree.
func runVerify(h rsaoaep.Hash) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		fatal(err)
	}

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		fatal(err)
	}
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	pub, err := rsaoaep.ImportPublicKey(string(pemKey))
	if err != nil {
		fatal(err)
	}

	message := []byte("rsaoaepdemo verification round-trip")
	ciphertext, err := pub.Encrypt(message, h)
	if err != nil {
		fatal(err)
	}

	decrypted, err := rsa.DecryptOAEP(stdHash(h)(), nil, priv, ciphertext, nil)
	if err != nil {
		fatal(fmt.Errorf("round-trip failed: %w", err))
	}
	fmt.Printf("ciphertext: %x\nrecovered:  %s\nmatch:      %t\n", ciphertext, decrypted, string(decrypted) == string(message))
}

// stdHash maps an rsaoaep.Hash to the matching standard library
// constructor, used only to drive the -verify decrypt oracle.
func stdHash(h rsaoaep.Hash) func() hash.Hash {
	switch h {
	case rsaoaep.SHA1():
		return sha1.New
	case rsaoaep.SHA384():
		return sha512.New384
	case rsaoaep.SHA512():
		return sha512.New
	default:
		return sha256.New
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
