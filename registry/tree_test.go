package registry

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.vocdoni.io/dvote/db/metadb"
)

func TestCommitmentTreeUpsert(t *testing.T) {
	c := qt.New(t)

	tree, err := newCommitmentTree(metadb.NewTest(t))
	c.Assert(err, qt.IsNil)
	c.Assert(tree.Size(), qt.Equals, 0)

	emptyRoot, err := tree.Root()
	c.Assert(err, qt.IsNil)

	c.Assert(tree.Upsert(big.NewInt(1), big.NewInt(100)), qt.IsNil)
	c.Assert(tree.Upsert(big.NewInt(2), big.NewInt(200)), qt.IsNil)
	c.Assert(tree.Size(), qt.Equals, 2)

	root, err := tree.Root()
	c.Assert(err, qt.IsNil)
	c.Assert(root.String(), qt.Not(qt.Equals), emptyRoot.String())

	// updating an existing leaf changes the root but not the size
	c.Assert(tree.Upsert(big.NewInt(1), big.NewInt(101)), qt.IsNil)
	c.Assert(tree.Size(), qt.Equals, 2)
	updatedRoot, err := tree.Root()
	c.Assert(err, qt.IsNil)
	c.Assert(updatedRoot.String(), qt.Not(qt.Equals), root.String())

	rootInt, err := tree.RootAsBigInt()
	c.Assert(err, qt.IsNil)
	c.Assert(rootInt.Sign(), qt.Not(qt.Equals), 0)
}

func TestCommitmentTreeProof(t *testing.T) {
	c := qt.New(t)

	tree, err := newCommitmentTree(metadb.NewTest(t))
	c.Assert(err, qt.IsNil)

	uid := big.NewInt(42)
	commitment := big.NewInt(123456789)
	c.Assert(tree.Upsert(uid, commitment), qt.IsNil)

	value, root, siblings, existence, err := tree.GenProof(uid)
	c.Assert(err, qt.IsNil)
	c.Assert(existence, qt.IsTrue)
	c.Assert(value.Cmp(commitment), qt.Equals, 0)

	// the returned root is the current one and the proof verifies against it
	currentRoot, err := tree.Root()
	c.Assert(err, qt.IsNil)
	c.Assert(root.String(), qt.Equals, currentRoot.String())
	c.Assert(VerifyProof(uid, commitment, root, siblings), qt.IsTrue)

	// a proof for a different commitment does not verify
	c.Assert(VerifyProof(uid, big.NewInt(1), root, siblings), qt.IsFalse)

	// after an update, a fresh proof carries the root it verifies against
	c.Assert(tree.Upsert(uid, big.NewInt(987654321)), qt.IsNil)
	value, root, siblings, existence, err = tree.GenProof(uid)
	c.Assert(err, qt.IsNil)
	c.Assert(existence, qt.IsTrue)
	c.Assert(VerifyProof(uid, value, root, siblings), qt.IsTrue)
}

func TestCommitmentTreeConcurrentProofs(t *testing.T) {
	c := qt.New(t)

	tree, err := newCommitmentTree(metadb.NewTest(t))
	c.Assert(err, qt.IsNil)

	uid := big.NewInt(5)
	c.Assert(tree.Upsert(uid, big.NewInt(1)), qt.IsNil)

	// every proof taken while the leaf is being updated must verify against
	// the root returned with it
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := int64(2); i < 64; i++ {
			if err := tree.Upsert(uid, big.NewInt(i)); err != nil {
				return
			}
		}
	}()
	for i := 0; i < 64; i++ {
		value, root, siblings, existence, err := tree.GenProof(uid)
		c.Assert(err, qt.IsNil)
		c.Assert(existence, qt.IsTrue)
		c.Assert(VerifyProof(uid, value, root, siblings), qt.IsTrue)
	}
	<-done
}
