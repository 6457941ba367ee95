// Package token mints opaque tracking tokens for anonymous booking lookup.
package token

import (
	"crypto/rand"
	"encoding/base32"

	"tablebook/internal/pkg/errs"
)

// 20 random bytes -> 32 base32 chars; not derived from any row identity so
// tokens cannot be enumerated.
const rawLen = 20

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func NewTrackingToken() (string, error) {
	buf := make([]byte, rawLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate tracking token")
	}
	return encoding.EncodeToString(buf), nil
}
