// Package registry persists community records together with their poseidon
// commitments and maintains the merkle tree whose root summarizes the whole
// registry. It is a prefixed key-value store; the following prefixes are
// used:
//   - 'c/' for community records
//   - 'k/' for community commitments
//   - 's/' for registry snapshots
//   - 't/' for the commitment merkle tree nodes
package registry

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/prefixeddb"
	"go.vocdoni.io/dvote/log"
)

var (
	// Prefixes for the keys in the database.
	communityPrefix  = []byte("c/")
	commitmentPrefix = []byte("k/")
	snapshotPrefix   = []byte("s/")
	treePrefix       = []byte("t/")
)

var (
	// ErrNotFound is returned when the requested artifact is not stored.
	ErrNotFound = fmt.Errorf("artifact not found")
	// ErrCommunityExists is returned by AddCommunity when a record with the
	// same uid is already registered.
	ErrCommunityExists = fmt.Errorf("community already exists")
)

// Storage wraps the database with typed accessors for the registry
// artifacts and owns the commitment tree.
type Storage struct {
	db   db.Database
	tree *CommitmentTree
}

// New creates a Storage instance over the given database, opening (or
// creating) the commitment tree under its own prefix.
func New(database db.Database) (*Storage, error) {
	tree, err := newCommitmentTree(prefixeddb.NewPrefixedDatabase(database, treePrefix))
	if err != nil {
		return nil, fmt.Errorf("could not open commitment tree: %w", err)
	}
	return &Storage{db: database, tree: tree}, nil
}

// Close closes the underlying database. No operations can be done after
// this call.
func (s *Storage) Close() {
	if err := s.db.Close(); err != nil {
		log.Warnw("failed to close registry database", "error", err)
	}
}

// Tree returns the commitment tree.
func (s *Storage) Tree() *CommitmentTree {
	return s.tree
}

// encodeArtifact serializes an artifact with deterministic CBOR options, so
// that equal artifacts always produce equal bytes.
func encodeArtifact(a any) ([]byte, error) {
	encOpts := cbor.CoreDetEncOptions()
	em, err := encOpts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return em.Marshal(a)
}

func decodeArtifact(data []byte, out any) error {
	return cbor.Unmarshal(data, out)
}

func (s *Storage) setArtifact(prefix, key []byte, a any) error {
	data, err := encodeArtifact(a)
	if err != nil {
		return err
	}
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), prefix)
	if err := wTx.Set(key, data); err != nil {
		return err
	}
	return wTx.Commit()
}

func (s *Storage) getArtifact(prefix, key []byte, out any) error {
	rTx := prefixeddb.NewPrefixedReader(s.db, prefix)
	data, err := rTx.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return ErrNotFound
		}
		return err
	}
	return decodeArtifact(data, out)
}

func (s *Storage) hasArtifact(prefix, key []byte) (bool, error) {
	rTx := prefixeddb.NewPrefixedReader(s.db, prefix)
	if _, err := rTx.Get(key); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Storage) listArtifactKeys(prefix []byte) ([][]byte, error) {
	pdb := prefixeddb.NewPrefixedDatabase(s.db, prefix)
	keys := [][]byte{}
	err := pdb.Iterate(nil, func(k, _ []byte) bool {
		key := make([]byte, len(k))
		copy(key, k)
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
