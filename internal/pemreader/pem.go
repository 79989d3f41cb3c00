// Package pemreader strips PEM armor and Base64-decodes the enclosed
// body to raw DER bytes, per RFC 7468's informal grammar as narrowed
// by spec.md §4.3. It does not decode the DER structure itself — that
// is internal/asn1's job.
package pemreader

import (
	"encoding/base64"
	"errors"
	"regexp"
)

// ErrInvalidPEM is returned when the input does not contain a single,
// well-formed PEM armor block with matching BEGIN/END labels.
var ErrInvalidPEM = errors.New("pemreader: invalid PEM armor")

// beginRe matches a "-----BEGIN X-----...-----END Y-----" block,
// capturing the BEGIN label, the body (header lines and all), and the
// END label. The label must appear identically in BEGIN and END; since
// Go's RE2 engine has no backreferences, Decode enforces this by
// comparing the two captured labels after matching.
var (
	beginRe = regexp.MustCompile(`(?s)-----BEGIN ([A-Z0-9 -]+)-----\r?\n(.*?)-----END ([A-Z0-9 -]+)-----`)
	notB64  = regexp.MustCompile(`[^A-Za-z0-9+/=]`)
)

// Decode extracts the DER payload from a single PEM-armored block. Any
// leading or trailing whitespace around the armor is tolerated.
// Optional header lines between BEGIN and a blank line are recognized
// and discarded along with the rest of the body framing.
func Decode(pem string) ([]byte, error) {
	m := beginRe.FindStringSubmatch(pem)
	if m == nil {
		return nil, ErrInvalidPEM
	}
	beginLabel, body, endLabel := m[1], m[2], m[3]
	if beginLabel != endLabel {
		return nil, ErrInvalidPEM
	}

	body = stripHeaders(body)
	body = notB64.ReplaceAllString(body, "")
	if body == "" {
		return nil, ErrInvalidPEM
	}

	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidPEM
	}
	return der, nil
}

// stripHeaders removes any "Key: Value" header lines preceding the
// first blank line, leaving only the Base64 body. A body with no
// headers (the common case for "PUBLIC KEY" blocks) is unchanged.
func stripHeaders(body string) string {
	idx := 0
	for idx < len(body) {
		lineEnd := idx
		for lineEnd < len(body) && body[lineEnd] != '\n' {
			lineEnd++
		}
		line := body[idx:lineEnd]
		trimmed := trimCR(line)
		if trimmed == "" {
			next := lineEnd + 1
			if next > len(body) {
				next = len(body)
			}
			return body[next:]
		}
		if !looksLikeHeader(trimmed) {
			return body[idx:]
		}
		idx = lineEnd + 1
	}
	return body
}

func looksLikeHeader(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] == ':' {
			return true
		}
	}
	return false
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}
