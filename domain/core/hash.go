package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
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

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// BankHash fingerprints a loaded context bank. Two banks with the same
// contexts and variation wiring produce the same fingerprint regardless of
// load order, so a redeploy with unchanged data files is detectable.
type BankHash Hash

// NewBankHash creates a bank fingerprint from raw data
func NewBankHash(data []byte) BankHash { return BankHash(NewHash(data)) }

// String returns the string representation
func (h BankHash) String() string { return Hash(h).String() }

// Short returns the first 12 hex characters, enough for logs and status pages
func (h BankHash) Short() string {
	s := Hash(h).String()
	if len(s) > 12 {
		return s[:12]
	}
	return s
}

// ComputeBankHash fingerprints contexts by ID with their compatibility sets
func ComputeBankHash(contexts map[string][]string) BankHash {
	ids := make([]string, 0, len(contexts))
	for id := range contexts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var data strings.Builder
	for _, id := range ids {
		data.WriteString(id)
		variations := append([]string(nil), contexts[id]...)
		sort.Strings(variations)
		data.WriteString(fmt.Sprintf("%v", variations))
	}

	return NewBankHash([]byte(data.String()))
}
