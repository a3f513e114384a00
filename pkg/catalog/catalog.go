// Package catalog resolves villa photos against a hand-maintained override map.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Copy is the display text a catalog entry can override. Nil fields leave the prior value alone.
type Copy struct {
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Category    *string `yaml:"category,omitempty"`
}

// Entry is a manual override for a single photo, keyed by slug in a Catalog.
type Entry struct {
	// Tags replaces the auto-derived tags entirely when set.
	Tags       []string        `yaml:"tags,omitempty"`
	Default    *Copy           `yaml:"default,omitempty"`
	PerSection map[string]Copy `yaml:"perSection,omitempty"`
}

// Catalog maps photo slugs to overrides. A nil Catalog is valid and overrides nothing.
type Catalog map[string]Entry

// Parse decodes a YAML catalog.
func Parse(bs []byte) (Catalog, error) {
	c := Catalog{}
	if err := yaml.Unmarshal(bs, &c); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return c, nil
}

// Load reads a YAML catalog from path. An empty path or a missing file is an empty catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Catalog{}, nil
	}

	bs, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		klog.V(1).Infof("no catalog at %s, using automatic metadata only", path)
		return Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	c, err := Parse(bs)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	klog.Infof("loaded %d catalog entries from %s", len(c), path)
	return c, nil
}

// String is a convenience for building Copy literals.
func String(s string) *string {
	return &s
}
