package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mocklet/mocklet/pkg/admission"
	"github.com/mocklet/mocklet/pkg/authgate"
	"github.com/mocklet/mocklet/pkg/chaos"
	"github.com/mocklet/mocklet/pkg/credential"
	"github.com/mocklet/mocklet/pkg/endpoint"
	"github.com/mocklet/mocklet/pkg/httputil"
	"github.com/mocklet/mocklet/pkg/logging"
	"github.com/mocklet/mocklet/pkg/requestlog"
	"github.com/mocklet/mocklet/pkg/scenario"
	"github.com/mocklet/mocklet/pkg/store"
	"github.com/mocklet/mocklet/pkg/template"
)

// corsDefaults are attached to every served response. Custom headers on
// the endpoint definition override them key by key.
var corsDefaults = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
}

// Handler serves virtual endpoints under /m/{id}. Each request runs the
// fixed pipeline: fetch → admission → hit log → auth gate → chaos →
// delay → scenario match → template render → response assembly.
type Handler struct {
	store     store.EndpointStore
	admission *admission.Controller
	hits      requestlog.Logger
	injector  *chaos.Injector
	minter    *credential.Minter
	logger    *slog.Logger
}

// NewHandler wires the serving pipeline. hits may be nil to disable hit
// logging.
func NewHandler(
	s store.EndpointStore,
	ctrl *admission.Controller,
	hits requestlog.Logger,
	injector *chaos.Injector,
	minter *credential.Minter,
	logger *slog.Logger,
) *Handler {
	if injector == nil {
		injector = chaos.New()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{
		store:     s,
		admission: ctrl,
		hits:      hits,
		injector:  injector,
		minter:    minter,
		logger:    logger,
	}
}

// ServeHTTP implements http.Handler for "/m/{id}".
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Preflight never touches the pipeline.
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		return
	}

	epID := r.PathValue("id")

	def, err := h.store.Get(r.Context(), epID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "not_found", "Not Found")
			return
		}
		h.logger.Error("endpoint fetch failed", "endpoint_id", epID, "error", err)
		httputil.WriteInternalError(w, "internal_error", "failed to load endpoint")
		return
	}

	allowed, err := h.admission.Admit(r.Context(), epID, def.OwnerIsPro)
	if err != nil {
		// Fail open: the counter backend being down must not take every
		// endpoint down with it.
		h.logger.Warn("admission store error", "endpoint_id", epID, "error", err)
	}
	if !allowed {
		httputil.WriteTooManyRequests(w, "rate_limit_exceeded",
			fmt.Sprintf("Rate limit exceeded (%d/min). Upgrade to Pro.", h.admission.Limit()))
		return
	}

	// Fire-and-forget: recording never blocks or fails the response.
	if h.hits != nil {
		h.hits.Record(&requestlog.Entry{
			Time:       time.Now().UTC(),
			EndpointID: epID,
			Method:     r.Method,
			RemoteAddr: remoteAddr(r),
		})
	}

	if err := authgate.Check(def.ProtectedToken, r.Header.Get("Authorization")); err != nil {
		httputil.WriteUnauthorized(w, "unauthorized", "Unauthorized")
		return
	}

	if h.injector.ShouldFail(def.Chaos) {
		httputil.WriteInternalError(w, "chaos_injected", "Chaos Monkey")
		return
	}

	if err := h.injector.Delay(r.Context(), def.DelayMs); err != nil {
		// Caller went away mid-delay; nothing left to respond to.
		return
	}

	renderCtx := template.NewContext(r.URL.Query(), h.minter)

	sel, err := scenario.Match(def.Scenarios, renderCtx.Query)
	if err != nil {
		h.logger.Error("scenario misconfigured", "endpoint_id", epID, "error", err)
		httputil.WriteInternalError(w, "scenario_config_error", "scenario response code is not numeric")
		return
	}
	if sel != nil {
		h.writeAssembled(w, def, sel.Status, sel.Body)
		return
	}

	res := template.Render(def.Template, renderCtx)
	if !res.OK {
		h.logger.Debug("template render degraded", "endpoint_id", epID, "error", res.Err)
	}
	h.writeAssembled(w, def, def.StatusCode, res.Value)
}

// writeAssembled writes the response body with the CORS and Content-Type
// defaults merged under the endpoint's custom headers. Custom headers are
// applied last so they win every conflict, Content-Type included.
func (h *Handler) writeAssembled(w http.ResponseWriter, def *endpoint.Definition, status int, body any) {
	for k, v := range corsDefaults {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	for k, v := range def.CustomHeaders {
		w.Header().Set(k, v)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func remoteAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
