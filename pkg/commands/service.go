package commands

import (
	"strings"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/store"
)

// newService resolves flags over config and opens the disk store.
func newService(so *options.SelectionOptions, lo *options.LogOptions) (*app.Service, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Load(settings)
	if err != nil {
		return nil, err
	}
	svc := &app.Service{
		Store:  s,
		Title:  firstNonEmpty(so.Title, settings.Title),
		Source: catalog.FromString(firstNonEmpty(so.Catalog, settings.Catalog)),
	}
	if l := lo.Logger(); l != nil {
		svc.Logger = l
	}
	return svc, nil
}

// catalogPath returns the file a catalog source reads, if any.
func catalogPath(svc *app.Service) string {
	if fs, ok := svc.Source.(catalog.FileSource); ok {
		return fs.Path
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
