package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vocdoni/community-registry/registry"
	"github.com/vocdoni/community-registry/types"
	"go.vocdoni.io/dvote/log"
)

// newCommunity registers a new community record
// POST /communities
func (a *API) newCommunity(w http.ResponseWriter, r *http.Request) {
	comm := &types.Community{}
	if err := json.NewDecoder(r.Body).Decode(comm); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}

	commitment, err := a.storage.AddCommunity(comm)
	if err != nil {
		if errors.Is(err, registry.ErrCommunityExists) {
			ErrCommunityAlreadyExists.With(comm.UID.String()).Write(w)
			return
		}
		ErrGenericInternalServerError.Withf("could not store community: %v", err).Write(w)
		return
	}
	root, err := a.storage.Tree().Root()
	if err != nil {
		ErrGenericInternalServerError.Withf("could not read registry root: %v", err).Write(w)
		return
	}

	log.Infow("new community registered",
		"uid", comm.UID.String(),
		"commitment", commitment.String(),
		"root", root.String())
	httpWriteJSON(w, &CommunityResponse{
		Community:  comm,
		Commitment: commitment,
		Root:       root,
	})
}

// setCommunity replaces an existing community record
// PUT /communities/{uid}
func (a *API) setCommunity(w http.ResponseWriter, r *http.Request) {
	uid, err := types.ParseUID(chi.URLParam(r, CommunityURLParam))
	if err != nil {
		ErrMalformedUID.WithErr(err).Write(w)
		return
	}
	comm := &types.Community{}
	if err := json.NewDecoder(r.Body).Decode(comm); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	if comm.UID != uid {
		ErrUIDMismatch.Withf("body %s, url %s", comm.UID, uid).Write(w)
		return
	}
	exists, err := a.storage.HasCommunity(uid)
	if err != nil {
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	if !exists {
		ErrCommunityNotFound.With(uid.String()).Write(w)
		return
	}

	commitment, err := a.storage.SetCommunity(comm)
	if err != nil {
		ErrGenericInternalServerError.Withf("could not replace community: %v", err).Write(w)
		return
	}
	root, err := a.storage.Tree().Root()
	if err != nil {
		ErrGenericInternalServerError.Withf("could not read registry root: %v", err).Write(w)
		return
	}

	log.Infow("community replaced", "uid", uid.String(), "commitment", commitment.String())
	httpWriteJSON(w, &CommunityResponse{
		Community:  comm,
		Commitment: commitment,
		Root:       root,
	})
}

// community returns the JSON form of a stored record
// GET /communities/{uid}
func (a *API) community(w http.ResponseWriter, r *http.Request) {
	uid, err := types.ParseUID(chi.URLParam(r, CommunityURLParam))
	if err != nil {
		ErrMalformedUID.WithErr(err).Write(w)
		return
	}
	comm, err := a.storage.Community(uid)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			ErrCommunityNotFound.With(uid.String()).Write(w)
			return
		}
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, comm)
}

// communityList returns the registered uids
// GET /communities
func (a *API) communityList(w http.ResponseWriter, _ *http.Request) {
	uids, err := a.storage.ListCommunities()
	if err != nil {
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, &CommunityListResponse{Communities: uids})
}

// communityCommitment returns the stored commitment and its merkle proof
// GET /communities/{uid}/commitment
func (a *API) communityCommitment(w http.ResponseWriter, r *http.Request) {
	uid, err := types.ParseUID(chi.URLParam(r, CommunityURLParam))
	if err != nil {
		ErrMalformedUID.WithErr(err).Write(w)
		return
	}
	commitment, root, siblings, existence, err := a.storage.Tree().GenProof(uid.BigInt())
	if err != nil {
		ErrGenericInternalServerError.Withf("could not generate proof: %v", err).Write(w)
		return
	}
	if !existence {
		ErrCommunityNotFound.With(uid.String()).Write(w)
		return
	}
	httpWriteJSON(w, &CommitmentResponse{
		UID:        uid,
		Commitment: (*types.BigInt)(commitment),
		Root:       root,
		Siblings:   siblings,
	})
}
