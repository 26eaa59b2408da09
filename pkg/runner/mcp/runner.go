package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/catalog"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Session *app.Session
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Session == nil {
		return errors.New("mcp runner requires a session")
	}
	srv := r.newServer()

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) newServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "multiselect"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(fmt.Sprintf("Search and toggle the %q options. Selections persist across sessions.", r.Session.Title)),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Session)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) endpointPath() string {
	path := strings.TrimSpace(r.HTTPEndpointPath)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Handler serves MCP at the endpoint path and the catalog API next to it.
func (r Runner) Handler(srv *server.MCPServer) http.Handler {
	router := chi.NewRouter()
	catalog.NewHandler(r.Session.Loader.Source()).Register(router)
	router.Handle(r.endpointPath(), server.NewStreamableHTTPServer(srv))
	return router
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	return catalog.Serve(ctx, r.Handler(srv), catalog.ServeOptions{
		Addr:        r.HTTPListenAddr,
		CertFile:    r.HTTPServerCert,
		KeyFile:     r.HTTPServerKey,
		OnListening: r.OnHTTPListening,
	})
}
