package api

import "github.com/vocdoni/community-registry/registry"

// NewTestAPI creates an API instance wired to the given storage without
// starting the HTTP server. Tests mount the Router on a httptest server.
func NewTestAPI(storage *registry.Storage) *API {
	a := &API{storage: storage}
	a.initRouter()
	return a
}
