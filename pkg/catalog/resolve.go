package catalog

import (
	"slices"
	"strings"

	"github.com/everview/everview/pkg/lightbox"
	"github.com/everview/everview/pkg/photo"
)

// Resolved is a photo after overrides and tags have been applied for one section.
type Resolved struct {
	photo.Base
	Description string
	Tags        []string
}

func apply(title, description, category *string, c *Copy) {
	if c == nil {
		return
	}
	if c.Title != nil {
		*title = *c.Title
	}
	if c.Description != nil {
		*description = *c.Description
	}
	if c.Category != nil {
		*category = *c.Category
	}
}

// Resolve applies the catalog entry for b, if any, in three steps: base values, then the
// entry's default copy, then the copy for section. Tags are the entry's manual tags, or the
// automatic ones, followed by the lower-cased folder path.
func (c Catalog) Resolve(b photo.Base, section string) Resolved {
	title := b.Title
	if title == "" {
		title = b.Slug
	}
	description := ""
	category := b.Category

	e, ok := c[b.Slug]
	if ok {
		apply(&title, &description, &category, e.Default)
		if o, ok := e.PerSection[section]; ok {
			apply(&title, &description, &category, &o)
		}
	}

	var tags []string
	if ok && e.Tags != nil {
		tags = photo.AppendUnique(nil, e.Tags...)
	} else {
		tags = photo.AutoTags(b.Slug, b.Subfolder)
	}
	for _, f := range b.Folders {
		tags = photo.AppendUnique(tags, strings.ToLower(f))
	}

	r := Resolved{Base: b, Description: description, Tags: tags}
	r.Folders = slices.Clone(b.Folders)
	r.Title = title
	r.Category = category
	return r
}

// ResolveMany resolves every base for section, keeping order.
func (c Catalog) ResolveMany(bs []photo.Base, section string) []Resolved {
	rs := make([]Resolved, 0, len(bs))
	for _, b := range bs {
		rs = append(rs, c.Resolve(b, section))
	}
	return rs
}

// ByFolder resolves the photos filed under folder, sorted by slug. section defaults to folder.
func (c Catalog) ByFolder(all []photo.Base, folder string, section string) []Resolved {
	if section == "" {
		section = folder
	}
	return c.ResolveMany(photo.FromFolder(all, folder, ""), section)
}

// TagIndex counts how many photos carry each tag.
func TagIndex(rs []Resolved) map[string]int {
	idx := map[string]int{}
	for _, r := range rs {
		for _, t := range r.Tags {
			idx[t]++
		}
	}
	return idx
}

// ToLightbox projects resolved photos onto what the viewer displays.
func ToLightbox(rs ...Resolved) []lightbox.Photo {
	ps := make([]lightbox.Photo, 0, len(rs))
	for _, r := range rs {
		ps = append(ps, lightbox.Photo{
			Src:         r.Src,
			Alt:         r.Title,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
		})
	}
	return ps
}
