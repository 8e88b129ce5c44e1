// Package babyjub implements the account public keys of the community
// registry. Keys are points on the Baby Jubjub curve, transported as the
// base58check encoding of their 32-byte compressed form.
package babyjub

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/fxamacker/cbor/v2"
	bjj "github.com/iden3/go-iden3-crypto/babyjub"
)

// KeyVersion is the base58check version byte of an encoded public key.
const KeyVersion byte = 0x15

// PublicKey is a point on the Baby Jubjub curve identifying an account.
// The zero point (0, 1) is the designated empty key used when a record
// carries no owning account.
type PublicKey struct {
	X *big.Int
	Y *big.Int
}

// EmptyPublicKey returns the designated empty key.
func EmptyPublicKey() *PublicKey {
	p := bjj.NewPoint()
	return &PublicKey{X: p.X, Y: p.Y}
}

// PublicKeyFromString parses a base58check encoded compressed public key.
// It fails if the text is not valid base58check, if the payload is not 32
// bytes, or if the bytes do not decompress to a curve point.
func PublicKeyFromString(s string) (*PublicKey, error) {
	data, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid public key encoding %q: %w", s, err)
	}
	if version != KeyVersion {
		return nil, fmt.Errorf("invalid public key version byte %x", version)
	}
	if len(data) != 32 {
		return nil, fmt.Errorf("invalid public key length %d", len(data))
	}
	var buf [32]byte
	copy(buf[:], data)
	point, err := bjj.NewPoint().Decompress(buf)
	if err != nil {
		return nil, fmt.Errorf("invalid public key point: %w", err)
	}
	return &PublicKey{X: point.X, Y: point.Y}, nil
}

// GenerateKey creates a random key pair and returns the private key bytes
// together with the derived public key.
func GenerateKey() (bjj.PrivateKey, *PublicKey) {
	privkey := bjj.NewRandPrivKey()
	pub := privkey.Public()
	return privkey, &PublicKey{X: pub.X, Y: pub.Y}
}

// String returns the base58check encoding of the compressed key.
func (k *PublicKey) String() string {
	compressed := k.point().Compress()
	return base58.CheckEncode(compressed[:], KeyVersion)
}

// Serialize returns the affine coordinates of the key as field elements,
// in (x, y) order.
func (k *PublicKey) Serialize() []*big.Int {
	return []*big.Int{new(big.Int).Set(k.X), new(big.Int).Set(k.Y)}
}

// IsEmpty reports whether k is the designated empty key.
func (k *PublicKey) IsEmpty() bool {
	return k.Equal(EmptyPublicKey())
}

// Equal reports whether both keys are the same curve point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.X.Cmp(other.X) == 0 && k.Y.Cmp(other.Y) == 0
}

// Compressed returns the 32-byte compressed form of the key.
func (k *PublicKey) Compressed() [32]byte {
	return k.point().Compress()
}

// MarshalJSON implements the json.Marshaler interface using the base58check
// string form.
func (k *PublicKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid JSON string: %q", data)
	}
	parsed, err := PublicKeyFromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*k = *parsed
	return nil
}

// MarshalCBOR encodes the compressed key bytes.
func (k *PublicKey) MarshalCBOR() ([]byte, error) {
	compressed := k.point().Compress()
	return cbor.Marshal(compressed[:])
}

// UnmarshalCBOR decodes the compressed key bytes.
func (k *PublicKey) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal public key: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("invalid compressed public key length %d", len(raw))
	}
	var buf [32]byte
	copy(buf[:], raw)
	point, err := bjj.NewPoint().Decompress(buf)
	if err != nil {
		return fmt.Errorf("invalid public key point: %w", err)
	}
	k.X, k.Y = point.X, point.Y
	return nil
}

func (k *PublicKey) point() *bjj.Point {
	return &bjj.Point{X: k.X, Y: k.Y}
}
