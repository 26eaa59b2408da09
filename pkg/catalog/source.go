// Package catalog supplies option catalogs from files, HTTP endpoints, or the
// built-in product group list, and serves catalogs over HTTP.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/multiselect/pkg/option"
)

// Source loads a catalog.
type Source interface {
	Load(ctx context.Context) (option.Catalog, error)
	String() string
}

// ErrBadStatus is returned by HTTPSource for non-2xx responses.
var ErrBadStatus = errors.New("catalog: unexpected status")

const maxBody = 4 << 20

// FromString picks a source for src: http(s) URLs are fetched, an empty
// string is the built-in product group list, anything else is a file path.
func FromString(src string) Source {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return Static{Catalog: option.FromLabels(ProductGroups...)}
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return &HTTPSource{URL: src}
	default:
		return FileSource{Path: src}
	}
}

// Static always returns the same catalog.
type Static struct {
	Catalog option.Catalog
}

func (s Static) Load(context.Context) (option.Catalog, error) {
	out := make(option.Catalog, len(s.Catalog))
	copy(out, s.Catalog)
	return out, nil
}

func (s Static) String() string { return "built-in" }

// FileSource reads a YAML or JSON catalog from disk.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) (option.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", f.Path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", f.Path, err)
	}
	return c, nil
}

func (f FileSource) String() string { return f.Path }

// HTTPSource fetches a catalog with GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (h *HTTPSource) Load(ctx context.Context) (option.Catalog, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: request %s: %w", h.URL, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", h.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d from %s", ErrBadStatus, resp.StatusCode, h.URL)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("catalog: read body %s: %w", h.URL, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", h.URL, err)
	}
	return c, nil
}

func (h *HTTPSource) String() string { return h.URL }

// Parse decodes a catalog document. Accepted shapes are a list of
// {id, label, value} objects, a list of labels, or an object holding either
// list under "productGroups" or "options". JSON is accepted as YAML.
func Parse(data []byte) (option.Catalog, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	c, err := fromDocument(plain(&node))
	if err != nil {
		return nil, err
	}
	return option.Normalize(c), nil
}

func fromDocument(doc any) (option.Catalog, error) {
	switch v := doc.(type) {
	case nil:
		return option.Catalog{}, nil
	case []any:
		return fromList(v)
	case map[string]any:
		for _, key := range []string{"productGroups", "options"} {
			if inner, ok := v[key]; ok {
				return fromDocument(inner)
			}
		}
		return nil, errors.New("expected a list or an object with productGroups or options")
	default:
		return nil, fmt.Errorf("unsupported catalog document %T", doc)
	}
}

// plain converts a YAML node tree into lists, maps and strings. Scalars keep
// their literal text, so "- 1.0" stays "1.0".
func plain(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return plain(n.Content[0])
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, plain(c))
		}
		return out
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = plain(n.Content[i+1])
		}
		return out
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil
		}
		return plain(n.Alias)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	default:
		return nil
	}
}

func fromList(items []any) (option.Catalog, error) {
	c := make(option.Catalog, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			c = append(c, option.Option{Label: v})
		case map[string]any:
			c = append(c, option.Option{
				ID:    scalar(v["id"]),
				Label: scalar(v["label"]),
				Value: scalar(v["value"]),
			})
		default:
			return nil, fmt.Errorf("item %d: unsupported type %T", i, item)
		}
	}
	return c, nil
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
