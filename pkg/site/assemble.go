package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/everview/everview/pkg/catalog"
	"github.com/everview/everview/pkg/lightbox"
	"github.com/everview/everview/pkg/photo"
	"k8s.io/klog/v2"
)

// Sequence is an ordered set of photos a lightbox can be opened on.
type Sequence struct {
	ID     string
	Photos []lightbox.Photo
}

// Room is a bedroom card with the photos picked for it.
type Room struct {
	Card
	Photos []catalog.Resolved
}

// TagCount is one entry of the gallery tag index.
type TagCount struct {
	Tag   string
	Count int
}

// an Assembly is everything the renderer needs.
type Assembly struct {
	Photos  []photo.Base
	Catalog catalog.Catalog

	Bedrooms catalog.Bedrooms
	Rooms    []Room
	Living   []catalog.Resolved
	Gallery  []catalog.Resolved

	Categories []string
	Tags       []TagCount
	// Filtered holds, per gallery photo, its lightbox page within its category's sequence.
	Filtered []string

	// Sequences are the lightbox sequences, one per mini-gallery.
	Sequences []Sequence
	// Thumbs are keyed by photo Src, then by thumbnail name.
	Thumbs map[string]map[string]ThumbMeta
	// Published maps photo Src to the published original, relative to the output root.
	Published map[string]string
}

// Collect collects an assembly of photos.
func Collect(c *Config) (*Assembly, error) {
	klog.Infof("collect: %s -> %s", c.InDir, c.OutDir)

	all, err := photo.Find(c.InDir)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	cat, err := catalog.Load(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	for _, o := range cat.Lint(all) {
		klog.Warningf("catalog entry %q matches no photo (closest: %q)", o.Key, o.Closest)
	}

	a := &Assembly{
		Photos:    all,
		Catalog:   cat,
		Thumbs:    map[string]map[string]ThumbMeta{},
		Published: map[string]string{},
	}

	if c.OutDir != "" {
		for _, b := range all {
			ts, err := thumbnails(b, c.OutDir, c.Thumbnails)
			if err != nil {
				return nil, fmt.Errorf("thumbnails for %s: %w", b.Src, err)
			}
			a.Thumbs[b.Src] = ts
			a.Published[b.Src] = photoRelPath(b)
		}
	}

	a.Bedrooms = cat.SelectBedrooms(all, catalog.BedroomFolder)
	picks := [][]catalog.Resolved{a.Bedrooms.Master, a.Bedrooms.OceanKing, a.Bedrooms.GardenKing, a.Bedrooms.Ground}
	for i, card := range bedroomCards {
		if len(picks[i]) == 0 {
			continue
		}
		a.Rooms = append(a.Rooms, Room{Card: card, Photos: picks[i]})
		a.Sequences = append(a.Sequences, a.sequence("bedrooms-"+card.ID, picks[i]))
	}

	a.Living = cat.ByFolder(all, "living", "living")
	if len(a.Living) > 0 {
		a.Sequences = append(a.Sequences, a.sequence("living", a.Living))
	}

	a.Gallery = cat.ResolveMany(all, "gallery")
	if len(a.Gallery) > 0 {
		a.Sequences = append(a.Sequences, a.sequence("gallery", a.Gallery))
	}

	seen := map[string]bool{}
	for _, r := range a.Gallery {
		if !seen[r.Category] {
			seen[r.Category] = true
			a.Categories = append(a.Categories, r.Category)
		}
	}

	byCategory := map[string][]catalog.Resolved{}
	for _, r := range a.Gallery {
		id := categorySequenceID(r.Category)
		a.Filtered = append(a.Filtered, viewPath(id, len(byCategory[r.Category])))
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	for _, cat := range a.Categories {
		a.Sequences = append(a.Sequences, a.sequence(categorySequenceID(cat), byCategory[cat]))
	}

	for t, n := range catalog.TagIndex(a.Gallery) {
		a.Tags = append(a.Tags, TagCount{Tag: t, Count: n})
	}
	sort.Slice(a.Tags, func(i, j int) bool {
		if a.Tags[i].Count != a.Tags[j].Count {
			return a.Tags[i].Count > a.Tags[j].Count
		}
		return a.Tags[i].Tag < a.Tags[j].Tag
	})

	klog.Infof("collected %d photos: %d rooms, %d living, %d gallery, %d tags",
		len(all), len(a.Rooms), len(a.Living), len(a.Gallery), len(a.Tags))
	return a, nil
}

// categorySequenceID names the gallery sequence shown while a category chip is selected.
func categorySequenceID(category string) string {
	return "gallery-" + urlSafePath(strings.ToLower(strings.Join(strings.Fields(category), "-")))
}

// sequence projects rs for the lightbox, pointing Src at the largest published rendition.
func (a *Assembly) sequence(id string, rs []catalog.Resolved) Sequence {
	ps := catalog.ToLightbox(rs...)
	for i := range ps {
		ps[i].Src = a.URL(rs[i].Src, "View")
	}
	return Sequence{ID: id, Photos: ps}
}

// URL returns the path of the named thumbnail of src relative to the output root, falling
// back to the published original and then to src itself.
func (a *Assembly) URL(src string, thumb string) string {
	if t, ok := a.Thumbs[src][thumb]; ok {
		return t.RelPath
	}
	if p, ok := a.Published[src]; ok {
		return p
	}
	return src
}

// Sequence returns the lightbox sequence with the given id.
func (a *Assembly) Sequence(id string) (Sequence, bool) {
	for _, s := range a.Sequences {
		if s.ID == id {
			return s, true
		}
	}
	return Sequence{}, false
}
