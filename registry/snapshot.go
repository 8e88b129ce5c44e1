package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vocdoni/community-registry/types"
)

// Snapshot captures the registry root at a point in time, together with the
// ledger coordinates of its submission. The registry itself never talks to a
// chain; the submitter and transaction hash are filled in by the external
// contract-update collaborator.
type Snapshot struct {
	ID        uuid.UUID      `json:"id"        cbor:"0,keyasint"`
	Root      types.HexBytes `json:"root"      cbor:"1,keyasint"`
	Size      int            `json:"size"      cbor:"2,keyasint"`
	CreatedAt time.Time      `json:"createdAt" cbor:"3,keyasint"`
	Submitter types.HexBytes `json:"submitter" cbor:"4,keyasint,omitempty"`
	TxHash    types.HexBytes `json:"txHash"    cbor:"5,keyasint,omitempty"`
}

// NewSnapshot records the current tree root as a snapshot artifact and
// returns it.
func (s *Storage) NewSnapshot(submitter, txHash types.HexBytes) (*Snapshot, error) {
	root, err := s.tree.Root()
	if err != nil {
		return nil, fmt.Errorf("could not read registry root: %w", err)
	}
	snap := &Snapshot{
		ID:        uuid.New(),
		Root:      root,
		Size:      s.tree.Size(),
		CreatedAt: time.Now().UTC(),
		Submitter: submitter,
		TxHash:    txHash,
	}
	if err := s.setArtifact(snapshotPrefix, snap.ID[:], snap); err != nil {
		return nil, fmt.Errorf("could not store snapshot: %w", err)
	}
	return snap, nil
}

// Snapshot retrieves a stored snapshot by its ID.
func (s *Storage) Snapshot(id uuid.UUID) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := s.getArtifact(snapshotPrefix, id[:], snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// ListSnapshots returns all stored snapshots, ordered by ID.
func (s *Storage) ListSnapshots() ([]*Snapshot, error) {
	keys, err := s.listArtifactKeys(snapshotPrefix)
	if err != nil {
		return nil, err
	}
	snaps := make([]*Snapshot, 0, len(keys))
	for _, key := range keys {
		snap := &Snapshot{}
		if err := s.getArtifact(snapshotPrefix, key, snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
