package poseidon

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

const (
	// chunkSize is the number of field elements hashed together in a
	// single poseidon permutation.
	chunkSize = 16
	// maxInputs bounds the flattened preimage length. A community record
	// with full reference lists stays well under this limit.
	maxInputs = 256
)

// MultiPoseidon computes the poseidon hash of an arbitrary (bounded) number
// of field elements. The inputs are hashed in chunks of 16 and the resulting
// chunk hashes are hashed again into the final digest, so the result is a
// single field element regardless of the preimage length.
func MultiPoseidon(inputs ...*big.Int) (*big.Int, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs provided")
	} else if len(inputs) > maxInputs {
		return nil, fmt.Errorf("too many inputs: %d > %d", len(inputs), maxInputs)
	}
	// calculate chunk hashes
	hashes := []*big.Int{}
	chunk := []*big.Int{}
	for _, input := range inputs {
		if len(chunk) == chunkSize {
			hash, err := poseidon.Hash(chunk)
			if err != nil {
				return nil, err
			}
			hashes = append(hashes, hash)
			chunk = []*big.Int{}
		}
		chunk = append(chunk, input)
	}
	// if the final chunk is not empty, hash it to get the last chunk hash
	if len(chunk) > 0 {
		hash, err := poseidon.Hash(chunk)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	// if there is only one chunk hash, return it
	if len(hashes) == 1 {
		return hashes[0], nil
	}
	// return the hash of all chunk hashes
	return poseidon.Hash(hashes)
}
