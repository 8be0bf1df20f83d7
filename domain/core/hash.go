package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough for display.
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// HashRows fingerprints an ordered list of rows. Cells are joined with a unit
// separator so ("a","bc") and ("ab","c") hash differently.
func HashRows(rows [][]string) Hash {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\x1f"))
		b.WriteByte('\n')
	}
	return NewHash([]byte(b.String()))
}

// FormatFloat renders a float the same way on every platform for hashing.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
