// Package mask anonymizes field values according to per-field rules.
package mask

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Strategy names an anonymization transform.
type Strategy string

const (
	// StrategyFake replaces the value with a fresh fake full name.
	StrategyFake Strategy = "fake"
	// StrategyMask hides the local part of an email except its last three characters.
	StrategyMask Strategy = "mask"
	// StrategyPartial keeps the first three characters.
	StrategyPartial Strategy = "partial"
	// StrategyHash replaces the value with its SHA-256 hex digest.
	StrategyHash Strategy = "hash"
)

// keepPrefix is the number of characters partial leaves visible, and the
// number of characters mask leaves visible before the @.
const keepPrefix = 3

func (s Strategy) String() string { return string(s) }

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyFake, StrategyMask, StrategyPartial, StrategyHash:
		return true
	default:
		return false
	}
}

// TypeAgnostic reports whether the strategy ignores the input value.
// All other known strategies work on the value's string form.
func (s Strategy) TypeAgnostic() bool {
	return s == StrategyFake
}

// Email masks every character except the three before the first @ and
// everything from the @ on. A value without @ is masked entirely.
func Email(s string) string {
	runes := []rune(s)
	at := -1
	for i, r := range runes {
		if r == '@' {
			at = i
			break
		}
	}

	keepFrom := len(runes)
	if at >= 0 {
		keepFrom = max(at-keepPrefix, 0)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if i < keepFrom {
			b.WriteByte('*')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Partial keeps the first three characters and stars the rest.
func Partial(s string) string {
	runes := []rune(s)
	if len(runes) <= keepPrefix {
		return s
	}
	return string(runes[:keepPrefix]) + strings.Repeat("*", len(runes)-keepPrefix)
}

// Hash returns the lowercase hex SHA-256 digest of s.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
