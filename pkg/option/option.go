// Package option defines the candidate options a multi-select is built from.
package option

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Option is a single candidate supplied by the caller. ID is the identity key;
// two options with the same ID are the same option even if Label or Value
// differ between catalogs.
type Option struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Catalog is the ordered list of options for one widget instance.
type Catalog []Option

// IDs returns the option ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, o := range c {
		ids = append(ids, o.ID)
	}
	return ids
}

// Find returns the option with the given id.
func (c Catalog) Find(id string) (Option, bool) {
	for _, o := range c {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// FromLabels builds a catalog from plain labels, the shape the product group
// API returns. Ids are derived from the label so identical labels collapse
// into one identity.
func FromLabels(labels ...string) Catalog {
	c := make(Catalog, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c = append(c, Option{ID: DeriveID(l), Label: l, Value: l})
	}
	return c
}

// Normalize fills in missing ids and values. Options without a label and an id
// are dropped.
func Normalize(c Catalog) Catalog {
	out := make(Catalog, 0, len(c))
	for _, o := range c {
		if o.ID == "" {
			if o.Label == "" {
				continue
			}
			o.ID = DeriveID(o.Label)
		}
		if o.Value == "" {
			o.Value = o.Label
		}
		out = append(out, o)
	}
	return out
}

// DeriveID makes a stable id from a label.
func DeriveID(label string) string {
	sum := md5.Sum([]byte(label))
	return fmt.Sprintf("%x", sum[:8])
}
