package registry

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/community-registry/types"
)

// AddCommunity stores a new community record, computes its commitment and
// inserts the commitment leaf into the tree. It returns ErrCommunityExists
// if the uid is already registered.
func (s *Storage) AddCommunity(comm *types.Community) (*types.BigInt, error) {
	exists, err := s.hasArtifact(communityPrefix, comm.UID.Bytes())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCommunityExists
	}
	return s.SetCommunity(comm)
}

// SetCommunity stores a community record (creating or replacing it), updates
// the stored commitment and upserts the commitment leaf. It returns the
// computed commitment.
func (s *Storage) SetCommunity(comm *types.Community) (*types.BigInt, error) {
	if comm == nil {
		return nil, fmt.Errorf("nil community record")
	}
	commitment, err := comm.Hash()
	if err != nil {
		return nil, err
	}
	key := comm.UID.Bytes()
	if err := s.setArtifact(communityPrefix, key, comm); err != nil {
		return nil, fmt.Errorf("could not store community %s: %w", comm.UID, err)
	}
	if err := s.setArtifact(commitmentPrefix, key, commitment); err != nil {
		return nil, fmt.Errorf("could not store commitment of %s: %w", comm.UID, err)
	}
	if err := s.tree.Upsert(comm.UID.BigInt(), commitment.MathBigInt()); err != nil {
		return nil, fmt.Errorf("could not upsert commitment leaf of %s: %w", comm.UID, err)
	}
	return commitment, nil
}

// Community retrieves a stored community record. It returns ErrNotFound if
// the uid is not registered.
func (s *Storage) Community(uid types.UID) (*types.Community, error) {
	comm := &types.Community{}
	if err := s.getArtifact(communityPrefix, uid.Bytes(), comm); err != nil {
		return nil, err
	}
	return comm, nil
}

// CommunityCommitment retrieves the stored commitment of a community.
func (s *Storage) CommunityCommitment(uid types.UID) (*types.BigInt, error) {
	commitment := &types.BigInt{}
	if err := s.getArtifact(commitmentPrefix, uid.Bytes(), commitment); err != nil {
		return nil, err
	}
	return commitment, nil
}

// HasCommunity reports whether a record with the given uid is stored.
func (s *Storage) HasCommunity(uid types.UID) (bool, error) {
	return s.hasArtifact(communityPrefix, uid.Bytes())
}

// ListCommunities returns the uids of all stored community records. Keys
// are the fixed-size big-endian form of the uid field element, so the uid
// is recovered from the key itself.
func (s *Storage) ListCommunities() ([]types.UID, error) {
	keys, err := s.listArtifactKeys(communityPrefix)
	if err != nil {
		return nil, err
	}
	uids := make([]types.UID, 0, len(keys))
	for _, key := range keys {
		uids = append(uids, types.UID(new(big.Int).SetBytes(key).String()))
	}
	return uids, nil
}
