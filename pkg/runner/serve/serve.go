// Package serve runs the catalog HTTP API.
package serve

import (
	"context"
	"errors"
	"net"

	"tableflip.dev/multiselect/pkg/catalog"
)

type Serve struct {
	Source      catalog.Source
	Addr        string
	OnListening func(net.Addr)
}

func (s *Serve) Do(ctx context.Context) error {
	if s.Source == nil {
		return errors.New("serve: no catalog source")
	}
	return catalog.Serve(ctx, catalog.NewHandler(s.Source).Router(), catalog.ServeOptions{
		Addr:        s.Addr,
		OnListening: s.OnListening,
	})
}
