package api

import (
	"github.com/vocdoni/community-registry/registry"
	"github.com/vocdoni/community-registry/types"
)

// CommunityResponse is returned after registering or replacing a community
// record. It carries the canonical JSON form of the stored record, its
// poseidon commitment and the registry root that now covers it.
type CommunityResponse struct {
	Community  *types.Community `json:"community"`
	Commitment *types.BigInt    `json:"commitment"`
	Root       types.HexBytes   `json:"root"`
}

// CommunityListResponse lists the registered community uids.
type CommunityListResponse struct {
	Communities []types.UID `json:"communities"`
}

// CommitmentResponse carries the stored commitment of a record and its
// merkle proof against the current registry root.
type CommitmentResponse struct {
	UID        types.UID      `json:"uid"`
	Commitment *types.BigInt  `json:"commitment"`
	Root       types.HexBytes `json:"root"`
	Siblings   types.HexBytes `json:"siblings"`
}

// RootResponse carries the current commitment tree root.
type RootResponse struct {
	Root types.HexBytes `json:"root"`
	Size int            `json:"size"`
}

// SnapshotRequest is the body of a snapshot registration. Both fields are
// optional hex strings filled in by the ledger submitter.
type SnapshotRequest struct {
	Submitter string `json:"submitter"`
	TxHash    string `json:"txHash"`
}

// SnapshotListResponse lists the stored registry snapshots.
type SnapshotListResponse struct {
	Snapshots []*registry.Snapshot `json:"snapshots"`
}
