package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// SerializedFieldSize is the size in bytes of a serialized field element.
const SerializedFieldSize = 32

// BaseField is the scalar field of the BN254 curve, the domain of every
// field element used in commitment preimages.
var BaseField = fr.Modulus()

// BigToFF function returns the finite field representation of the big.Int
// provided. It uses Euclidean Modulus and the BN254 curve scalar field to
// represent the provided number.
func BigToFF(iv *big.Int) *big.Int {
	z := big.NewInt(0)
	if c := iv.Cmp(BaseField); c == 0 {
		return z
	} else if c != 1 && iv.Cmp(z) != -1 {
		return iv
	}
	return z.Mod(iv, BaseField)
}

// InField reports whether iv is a canonical field element, that is,
// non-negative and strictly smaller than the field modulus.
func InField(iv *big.Int) bool {
	return iv.Sign() >= 0 && iv.Cmp(BaseField) < 0
}

// FieldToBytes returns the 32-byte big-endian representation of a field
// element, left padded with zeros.
func FieldToBytes(iv *big.Int) []byte {
	b := BigToFF(iv).Bytes()
	for len(b) < SerializedFieldSize {
		b = append([]byte{0}, b...)
	}
	return b
}
