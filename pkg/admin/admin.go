// Package admin exposes the endpoint management API. It is the service's
// write surface: the serving pipeline under /m/ only ever reads the
// store this API maintains.
package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mocklet/mocklet/internal/id"
	"github.com/mocklet/mocklet/pkg/endpoint"
	"github.com/mocklet/mocklet/pkg/generator"
	"github.com/mocklet/mocklet/pkg/httputil"
	"github.com/mocklet/mocklet/pkg/logging"
	"github.com/mocklet/mocklet/pkg/requestlog"
	"github.com/mocklet/mocklet/pkg/store"
)

// API serves endpoint CRUD over an EndpointStore.
type API struct {
	store  store.EndpointStore
	hits   *requestlog.MemoryStore
	logger *slog.Logger
}

// New creates the admin API. hits may be nil when hit inspection is not
// wired up.
func New(s store.EndpointStore, hits *requestlog.MemoryStore, logger *slog.Logger) *API {
	if logger == nil {
		logger = logging.Nop()
	}
	return &API{store: s, hits: hits, logger: logger}
}

// Register mounts the admin routes on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/endpoints", a.handleList)
	mux.HandleFunc("POST /admin/endpoints", a.handleCreate)
	mux.HandleFunc("GET /admin/endpoints/{id}", a.handleGet)
	mux.HandleFunc("PUT /admin/endpoints/{id}", a.handleUpdate)
	mux.HandleFunc("DELETE /admin/endpoints/{id}", a.handleDelete)
	mux.HandleFunc("GET /admin/endpoints/{id}/hits", a.handleListHits)
	mux.HandleFunc("GET /admin/generators", a.handleListGenerators)
}

// ListResponse is the response for GET /admin/endpoints.
type ListResponse struct {
	Endpoints []*endpoint.Definition `json:"endpoints"`
	Count     int                    `json:"count"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	defs, err := a.store.List(r.Context())
	if err != nil {
		httputil.WriteInternalError(w, "internal_error", "failed to list endpoints")
		return
	}
	httputil.WriteOK(w, &ListResponse{Endpoints: defs, Count: len(defs)})
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var def endpoint.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		httputil.WriteBadRequest(w, "invalid_request", "invalid JSON body")
		return
	}

	if def.ID == "" {
		def.ID = id.Short()
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now().UTC()
	}

	if err := def.Validate(); err != nil {
		httputil.WriteBadRequest(w, "invalid_endpoint", err.Error())
		return
	}
	if err := a.store.Put(r.Context(), &def); err != nil {
		httputil.WriteInternalError(w, "internal_error", "failed to store endpoint")
		return
	}

	a.logger.Info("endpoint created", "endpoint_id", def.ID, "method", def.Method)
	httputil.WriteCreated(w, &def)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	def, err := a.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "endpoint not found")
			return
		}
		httputil.WriteInternalError(w, "internal_error", "failed to load endpoint")
		return
	}
	httputil.WriteOK(w, def)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	epID := r.PathValue("id")

	existing, err := a.store.Get(r.Context(), epID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "endpoint not found")
			return
		}
		httputil.WriteInternalError(w, "internal_error", "failed to load endpoint")
		return
	}

	var def endpoint.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		httputil.WriteBadRequest(w, "invalid_request", "invalid JSON body")
		return
	}

	// The path is authoritative for identity; creation time survives
	// updates.
	def.ID = epID
	def.CreatedAt = existing.CreatedAt

	if err := def.Validate(); err != nil {
		httputil.WriteBadRequest(w, "invalid_endpoint", err.Error())
		return
	}
	if err := a.store.Put(r.Context(), &def); err != nil {
		httputil.WriteInternalError(w, "internal_error", "failed to store endpoint")
		return
	}

	a.logger.Info("endpoint updated", "endpoint_id", epID)
	httputil.WriteOK(w, &def)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	epID := r.PathValue("id")
	if err := a.store.Delete(r.Context(), epID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "endpoint not found")
			return
		}
		httputil.WriteInternalError(w, "internal_error", "failed to delete endpoint")
		return
	}
	a.logger.Info("endpoint deleted", "endpoint_id", epID)
	httputil.WriteNoContent(w)
}

// HitsResponse is the response for GET /admin/endpoints/{id}/hits.
type HitsResponse struct {
	Hits  []*requestlog.Entry `json:"hits"`
	Count int                 `json:"count"`
}

// GeneratorsResponse is the response for GET /admin/generators.
type GeneratorsResponse struct {
	Generators []string `json:"generators"`
	Count      int      `json:"count"`
}

// handleListGenerators lists the template tokens endpoints may use, so
// the dashboard can offer them without hardcoding the set.
func (a *API) handleListGenerators(w http.ResponseWriter, _ *http.Request) {
	tokens := generator.Tokens()
	httputil.WriteOK(w, &GeneratorsResponse{Generators: tokens, Count: len(tokens)})
}

func (a *API) handleListHits(w http.ResponseWriter, r *http.Request) {
	if a.hits == nil {
		httputil.WriteNotFound(w, "not_found", "hit inspection not enabled")
		return
	}
	entries := a.hits.ListByEndpoint(r.PathValue("id"))
	if entries == nil {
		entries = []*requestlog.Entry{}
	}
	httputil.WriteOK(w, &HitsResponse{Hits: entries, Count: len(entries)})
}
