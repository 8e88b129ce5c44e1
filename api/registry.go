package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vocdoni/community-registry/registry"
	"github.com/vocdoni/community-registry/types"
	"go.vocdoni.io/dvote/log"
)

// registryRoot returns the current commitment tree root
// GET /registry/root
func (a *API) registryRoot(w http.ResponseWriter, _ *http.Request) {
	root, err := a.storage.Tree().Root()
	if err != nil {
		ErrGenericInternalServerError.Withf("could not read registry root: %v", err).Write(w)
		return
	}
	httpWriteJSON(w, &RootResponse{Root: root, Size: a.storage.Tree().Size()})
}

// newSnapshot records the current registry root as a snapshot
// POST /registry/snapshots
func (a *API) newSnapshot(w http.ResponseWriter, r *http.Request) {
	req := &SnapshotRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	var submitter, txHash types.HexBytes
	if req.Submitter != "" {
		if !common.IsHexAddress(req.Submitter) {
			ErrMalformedAddress.With(req.Submitter).Write(w)
			return
		}
		submitter = common.HexToAddress(req.Submitter).Bytes()
	}
	if req.TxHash != "" {
		if len(common.FromHex(req.TxHash)) != common.HashLength {
			ErrMalformedAddress.With(req.TxHash).Write(w)
			return
		}
		txHash = common.HexToHash(req.TxHash).Bytes()
	}

	snap, err := a.storage.NewSnapshot(submitter, txHash)
	if err != nil {
		ErrGenericInternalServerError.Withf("could not store snapshot: %v", err).Write(w)
		return
	}
	log.Infow("registry snapshot recorded",
		"id", snap.ID.String(),
		"root", snap.Root.String(),
		"size", snap.Size)
	httpWriteJSON(w, snap)
}

// snapshot returns a single stored snapshot
// GET /registry/snapshots/{snapshotId}
func (a *API) snapshot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, SnapshotURLParam))
	if err != nil {
		ErrSnapshotNotFound.WithErr(err).Write(w)
		return
	}
	snap, err := a.storage.Snapshot(id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			ErrSnapshotNotFound.With(id.String()).Write(w)
			return
		}
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, snap)
}

// snapshotList returns all stored snapshots
// GET /registry/snapshots
func (a *API) snapshotList(w http.ResponseWriter, _ *http.Request) {
	snaps, err := a.storage.ListSnapshots()
	if err != nil {
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, &SnapshotListResponse{Snapshots: snaps})
}
