package commands

import (
	"net"
	"reflect"
	"testing"

	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
)

func TestListenURL(t *testing.T) {
	tests := []struct {
		name string
		host string
		addr net.Addr
		tls  bool
		path string
		want string
	}{{
		name: "loopback",
		host: "127.0.0.1",
		addr: &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080},
		path: "/mcp",
		want: "http://127.0.0.1:8080/mcp",
	}, {
		name: "wildcard uses loopback",
		host: "0.0.0.0",
		addr: &net.TCPAddr{IP: net.IPv4zero, Port: 9000},
		path: "mcp",
		want: "http://127.0.0.1:9000/mcp",
	}, {
		name: "ipv6 host is bracketed",
		host: "::1",
		addr: &net.TCPAddr{IP: net.ParseIP("::1"), Port: 443},
		tls:  true,
		want: "https://[::1]:443/mcp",
	}, {
		name: "non tcp address",
		host: "localhost",
		addr: &net.UnixAddr{Name: "/tmp/mcp.sock", Net: "unix"},
		path: "/x",
		want: "http:///tmp/mcp.sock/x",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listenURL(tt.host, tt.addr, tt.tls, tt.path); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty(" ", "", " b ", "c"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"ui", "list", "select", "unselect", "clear", "titles", "serve", "mcp", "completion", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == nil || cmd.Name() != name {
			t.Fatalf("expected %s command, got %v (err %v)", name, cmd, err)
		}
	}
}

func TestSelectRequiresArgsUnlessInteractive(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"select"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := cmd.Args(cmd, nil); err == nil {
		t.Fatal("expected error without args")
	}
	if err := cmd.Flags().Set("interactive", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Fatalf("interactive should not need args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"Fantasy"}); err == nil {
		t.Fatal("interactive should reject args")
	}
}

func TestCompletionCandidatesFilterSelected(t *testing.T) {
	views := selection.Views{
		Selected: []selection.SelectableOption{
			{Option: option.Option{ID: "1", Label: "Fantasy"}, Selected: true},
			{Option: option.Option{ID: "2", Label: "Thrillers"}, Selected: true},
		},
		Unselected: []selection.SelectableOption{
			{Option: option.Option{ID: "3", Label: "Thrillers voor jongeren"}},
		},
	}

	tests := []struct {
		name       string
		checked    bool
		toComplete string
		want       []string
	}{{
		name:       "unselect matches filter",
		toComplete: "thr",
		want:       []string{`"Thrillers"`},
	}, {
		name: "unselect without input",
		want: []string{`"Fantasy"`, `"Thrillers"`},
	}, {
		name:       "unselect no match",
		toComplete: "zzz",
		want:       []string{},
	}, {
		name:       "select uses unselected",
		checked:    true,
		toComplete: "thr",
		want:       []string{`"Thrillers voor jongeren"`},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completionCandidates(views, tt.checked, tt.toComplete)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
