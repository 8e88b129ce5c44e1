package types

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/community-registry/crypto"
	"github.com/vocdoni/community-registry/util"
)

// UID is an opaque unique identifier, transported as the decimal string of a
// field element. Entity references (persons, claim plans) are always UIDs.
type UID string

// NewUID generates a random identifier uniformly distributed in the field.
func NewUID() UID {
	n := new(big.Int).SetBytes(util.RandomBytes(crypto.SerializedFieldSize))
	return UID(crypto.BigToFF(n).String())
}

// ParseUID validates and canonicalizes an identifier string. It fails on
// empty input, non-decimal text and values outside the field.
func ParseUID(s string) (UID, error) {
	if s == "" {
		return "", fmt.Errorf("empty uid")
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("invalid uid %q: not a decimal number", s)
	}
	if !crypto.InField(n) {
		return "", fmt.Errorf("invalid uid %q: exceeds the field modulus", s)
	}
	return UID(n.String()), nil
}

// ParseUIDList validates a list of identifier strings, preserving order.
// The returned slice is never nil, so an absent list round-trips as [].
func ParseUIDList(ss []string) ([]UID, error) {
	if len(ss) > MaxListLen {
		return nil, fmt.Errorf("too many identifiers: %d > %d", len(ss), MaxListLen)
	}
	uids := make([]UID, 0, len(ss))
	for _, s := range ss {
		uid, err := ParseUID(s)
		if err != nil {
			return nil, err
		}
		uids = append(uids, uid)
	}
	return uids, nil
}

// String returns the decimal string form.
func (u UID) String() string {
	return string(u)
}

// BigInt returns the identifier as a field element. It returns zero for an
// identifier that was not built through ParseUID or NewUID.
func (u UID) BigInt() *big.Int {
	n, ok := new(big.Int).SetString(string(u), 10)
	if !ok {
		return big.NewInt(0)
	}
	return n
}

// Bytes returns the fixed-size big-endian byte form, used as merkle tree
// leaf key.
func (u UID) Bytes() []byte {
	return crypto.FieldToBytes(u.BigInt())
}
