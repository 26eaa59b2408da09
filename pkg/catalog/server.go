package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tableflip.dev/multiselect/pkg/option"
)

// Handler serves a catalog over HTTP.
type Handler struct {
	source Source
}

// NewHandler returns a Handler backed by src.
func NewHandler(src Source) *Handler {
	return &Handler{source: src}
}

// Router wires GET /api/productGroups and GET /api/options. Any other method
// on those paths answers 405.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// Register adds the catalog routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/productGroups", h.getProductGroups)
	r.Get("/api/options", h.getOptions)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

type productGroupsResponse struct {
	ProductGroups []string `json:"productGroups"`
}

type optionsResponse struct {
	Options option.Catalog `json:"options"`
	Count   int            `json:"count"`
}

// getProductGroups answers with the raw labels, entity encoded as stored.
func (h *Handler) getProductGroups(w http.ResponseWriter, r *http.Request) {
	c, err := h.source.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	labels := make([]string, 0, len(c))
	for _, o := range c {
		labels = append(labels, o.Label)
	}
	writeJSON(w, http.StatusOK, productGroupsResponse{ProductGroups: labels})
}

func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	c, err := h.source.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Options: c, Count: len(c)})
}

// writeJSON writes a value as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeOptions configures Serve. TLS is used when both CertFile and KeyFile
// are set.
type ServeOptions struct {
	Addr        string
	CertFile    string
	KeyFile     string
	OnListening func(net.Addr)
}

// Serve listens on opts.Addr and serves h until ctx is done. OnListening,
// when set, receives the bound address before the first request.
func Serve(ctx context.Context, h http.Handler, opts ServeOptions) error {
	useTLS := opts.CertFile != "" && opts.KeyFile != ""
	if !useTLS && (opts.CertFile != "" || opts.KeyFile != "") {
		return errors.New("catalog: both tls cert and key must be provided")
	}
	addr := opts.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if opts.OnListening != nil {
		opts.OnListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if useTLS {
		err = srv.ServeTLS(ln, opts.CertFile, opts.KeyFile)
	} else {
		err = srv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
