package types

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// BigInt is a big.Int wrapper which marshals JSON to a string representation
// of the big number. It is the wire form of a single field element.
type BigInt big.Int

// MarshalText returns the decimal string representation.
func (i *BigInt) MarshalText() ([]byte, error) {
	return (*big.Int)(i).MarshalText()
}

// UnmarshalText parses a decimal string representation.
func (i *BigInt) UnmarshalText(data []byte) error {
	return (*big.Int)(i).UnmarshalText(data)
}

// MarshalCBOR encodes the value as its big-endian byte representation.
func (i *BigInt) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(i.Bytes())
}

// UnmarshalCBOR decodes a big-endian byte representation.
func (i *BigInt) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("failed to unmarshal BigInt: %w", err)
	}
	i.SetBytes(b)
	return nil
}

// String returns the decimal string representation.
func (i *BigInt) String() string {
	return (*big.Int)(i).String()
}

// SetString interprets s in base 10 and sets i to that value.
func (i *BigInt) SetString(s string) (*BigInt, error) {
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid big integer %q", s)
	}
	return i.Set((*BigInt)(bi)), nil
}

// Set sets i to x and returns i.
func (i *BigInt) Set(x *BigInt) *BigInt {
	(*big.Int)(i).Set((*big.Int)(x))
	return i
}

// SetBytes interprets b as big-endian unsigned bytes and sets i to that value.
func (i *BigInt) SetBytes(b []byte) *BigInt {
	(*big.Int)(i).SetBytes(b)
	return i
}

// Bytes returns the big-endian byte representation.
func (i *BigInt) Bytes() []byte {
	return (*big.Int)(i).Bytes()
}

// MathBigInt converts b to a math/big *big.Int.
func (i *BigInt) MathBigInt() *big.Int {
	return (*big.Int)(i)
}

// Equal reports whether i and x hold the same value.
func (i *BigInt) Equal(x *BigInt) bool {
	return (*big.Int)(i).Cmp((*big.Int)(x)) == 0
}
