package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}
	lo := &options.LogOptions{}
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: base.Wrap80(`Launch an MCP server that lists, filters, and toggles the options of one
multi-select through the Model Context Protocol. Over HTTP the catalog API is
served next to the MCP endpoint.`),
		Example: `
multiselect mcp
multiselect mcp --transport stdio --title Genre --catalog genres.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := mcp.Runner{
				Name:             "multiselect",
				Version:          version,
				HTTPEndpointPath: strings.TrimSpace(httpPath),
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportHTTP):
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				host := firstNonEmpty(httpHost, "127.0.0.1")
				tls := runner.HTTPServerCert != "" && runner.HTTPServerKey != ""
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
						listenURL(host, a, tls, httpPath))
				}
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			svc, err := newService(so, lo)
			if err != nil {
				return err
			}
			sess, err := svc.Open(contextOf(cmd))
			if err != nil {
				return err
			}
			defer sess.Close()
			runner.Session = sess

			return runner.Do(contextOf(cmd))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")
	options.AddSelectionArgs(cmd, so)
	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

// listenURL renders the address a client should use. Wildcard hosts are
// replaced by the bound IP, or loopback when that is unspecified too.
func listenURL(host string, a net.Addr, tls bool, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	scheme := "http"
	if tls {
		scheme = "https"
	}

	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, a.String(), path)
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			host = tcpAddr.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcpAddr.Port)), path)
}
