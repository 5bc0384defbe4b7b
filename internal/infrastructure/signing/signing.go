// Package signing produces the request signatures expected by the media
// provider for signed uploads and deletes.
package signing

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Signer signs parameter sets with the shared API secret.
type Signer struct {
	secret string
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Sign returns the lowercase hex SHA-1 of the canonical parameter string
// followed by the secret. Values are used verbatim, without URL encoding.
func (s *Signer) Sign(params map[string]string) string {
	sum := sha1.Sum([]byte(Canonical(params) + s.secret))
	return hex.EncodeToString(sum[:])
}

// Canonical joins params as key=value pairs sorted by key and separated by &.
func Canonical(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, "&")
}
