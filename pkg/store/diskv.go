package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

const bucket = "kv"

// Disk is a Store backed by diskv. Each key is one file under the base path,
// so values survive process restarts.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Load creates a Disk store using the provided config. A nil config is
// resolved with LoadConfig.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath reports the directory the store writes to.
func (p *Disk) BasePath() string {
	return p.basePath
}

func (p *Disk) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %q: %w", key, err)
	}
	return string(val), true, nil
}

func (p *Disk) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (p *Disk) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in ascending order until ctx is done.
func (p *Disk) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Keys carry spaces and arbitrary titles, so file names are their URL-safe
// base64 encoding.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: base64.RawURLEncoding.EncodeToString([]byte(s)),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	key, err := base64.RawURLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		return pathKey.FileName
	}
	return string(key)
}
