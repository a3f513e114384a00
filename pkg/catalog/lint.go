package catalog

import (
	"sort"

	"github.com/antzucaro/matchr"
	"github.com/everview/everview/pkg/photo"
)

// Orphan is a catalog key that matches no photo.
type Orphan struct {
	Key string
	// Closest is the nearest existing slug by edit distance, if any photos exist.
	Closest  string
	Distance int
}

// Lint returns the catalog keys that no photo in all carries, sorted by key.
func (c Catalog) Lint(all []photo.Base) []Orphan {
	slugs := map[string]bool{}
	for _, b := range all {
		slugs[b.Slug] = true
	}

	orphans := []Orphan{}
	for k := range c {
		if slugs[k] {
			continue
		}
		o := Orphan{Key: k, Distance: -1}
		for _, b := range all {
			d := matchr.Levenshtein(k, b.Slug)
			if o.Distance < 0 || d < o.Distance {
				o.Closest = b.Slug
				o.Distance = d
			}
		}
		orphans = append(orphans, o)
	}

	sort.Slice(orphans, func(i, j int) bool {
		return orphans[i].Key < orphans[j].Key
	})
	return orphans
}
