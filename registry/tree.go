package registry

import (
	"errors"
	"math/big"
	"sync"

	"github.com/vocdoni/arbo"
	"github.com/vocdoni/community-registry/crypto"
	"github.com/vocdoni/community-registry/types"
	"go.vocdoni.io/dvote/db"
)

// hashFunc is the hash function used in the commitment tree.
var hashFunc = arbo.HashFunctionPoseidon

// CommitmentTree is the merkle tree holding one leaf per registered
// community: the leaf key is the community uid and the leaf value its
// poseidon commitment. Its root is the single value the ledger submitter
// posts on-chain.
type CommitmentTree struct {
	mu   sync.Mutex
	tree *arbo.Tree
}

// newCommitmentTree opens or creates the tree stored in the passed database.
func newCommitmentTree(database db.Database) (*CommitmentTree, error) {
	tree, err := arbo.NewTree(arbo.Config{
		Database:     database,
		MaxLevels:    types.RegistryTreeMaxLevels,
		HashFunction: hashFunc,
	})
	if err != nil {
		return nil, err
	}
	return &CommitmentTree{tree: tree}, nil
}

// Upsert adds the commitment leaf for the given uid, or updates it if the
// uid is already registered.
func (t *CommitmentTree) Upsert(uid, commitment *big.Int) error {
	key := arbo.BigIntToBytes(crypto.SerializedFieldSize, uid)
	value := arbo.BigIntToBytes(crypto.SerializedFieldSize, commitment)

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, _, err := t.tree.Get(key); err != nil {
		if errors.Is(err, arbo.ErrKeyNotFound) {
			return t.tree.Add(key, value)
		}
		return err
	}
	return t.tree.Update(key, value)
}

// Root returns the current tree root.
func (t *CommitmentTree) Root() (types.HexBytes, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	root, err := t.tree.Root()
	if err != nil {
		return nil, err
	}
	return types.HexBytes(root), nil
}

// RootAsBigInt returns the current tree root as a field element.
func (t *CommitmentTree) RootAsBigInt() (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	root, err := t.tree.Root()
	if err != nil {
		return nil, err
	}
	return arbo.BytesToBigInt(root), nil
}

// Size returns the number of leaves in the tree.
func (t *CommitmentTree) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	size, err := t.tree.GetNLeafs()
	if err != nil {
		return 0
	}
	return size
}

// GenProof generates a merkle proof for the leaf of the given uid. It
// returns the leaf value (the stored commitment), the root the proof
// verifies against, the packed siblings and an inclusion boolean. Proof and
// root are read in the same critical section, so a concurrent upsert cannot
// produce a pair that does not verify.
func (t *CommitmentTree) GenProof(uid *big.Int) (*big.Int, types.HexBytes, types.HexBytes, bool, error) {
	key := arbo.BigIntToBytes(crypto.SerializedFieldSize, uid)

	t.mu.Lock()
	defer t.mu.Unlock()
	_, value, siblings, existence, err := t.tree.GenProof(key)
	if err != nil {
		return nil, nil, nil, false, err
	}
	root, err := t.tree.Root()
	if err != nil {
		return nil, nil, nil, false, err
	}
	if !existence {
		return nil, types.HexBytes(root), types.HexBytes(siblings), false, nil
	}
	return arbo.BytesToBigInt(value), types.HexBytes(root), types.HexBytes(siblings), true, nil
}

// VerifyProof verifies a merkle proof against the given root.
func VerifyProof(uid, commitment *big.Int, root, siblings []byte) bool {
	key := arbo.BigIntToBytes(crypto.SerializedFieldSize, uid)
	value := arbo.BigIntToBytes(crypto.SerializedFieldSize, commitment)
	valid, err := arbo.CheckProof(hashFunc, key, value, root, siblings)
	if err != nil {
		return false
	}
	return valid
}
