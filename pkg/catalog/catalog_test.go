package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/everview/everview/pkg/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(src string) photo.Base {
	return bases(src)[0]
}

// bases builds records the way photo.Find does, without touching the disk.
func bases(srcs ...string) []photo.Base {
	bs := []photo.Base{}
	for _, src := range srcs {
		hier := strings.Split(src, "/")
		folders := hier[:len(hier)-1]
		sub := photo.DefaultSubfolder
		if len(folders) > 0 {
			sub = folders[0]
		}
		bs = append(bs, photo.Base{
			Slug:      photo.SlugFor(src),
			Src:       src,
			Title:     photo.TitleFromFilename(src),
			Category:  photo.TitleCase(sub),
			Subfolder: sub,
			Folders:   folders,
		})
	}
	return bs
}

func TestResolveWithoutEntry(t *testing.T) {
	var c Catalog
	r := c.Resolve(base("bedrooms/garden-king/view-sunset-1.webp"), "bedrooms")

	assert.Equal(t, "View Sunset", r.Title)
	assert.Equal(t, "Bedrooms", r.Category)
	assert.Empty(t, r.Description)
	assert.Equal(t, []string{"bedrooms", "view", "sunset", "garden-king"}, r.Tags)
}

func TestResolveLayering(t *testing.T) {
	b := base("gallery/x.webp")
	b.Title = "X"

	c := Catalog{
		"x": {
			Default: &Copy{Title: String("Y"), Description: String("default description")},
			PerSection: map[string]Copy{
				"gallery":  {Title: String("Z")},
				"bedrooms": {Category: String("Suites")},
			},
		},
	}

	g := c.Resolve(b, "gallery")
	assert.Equal(t, "Z", g.Title)
	assert.Equal(t, "default description", g.Description)
	assert.Equal(t, "Gallery", g.Category)

	bd := c.Resolve(b, "bedrooms")
	assert.Equal(t, "Y", bd.Title)
	assert.Equal(t, "Suites", bd.Category)

	other := c.Resolve(b, "living")
	assert.Equal(t, "Y", other.Title)
	assert.Equal(t, "default description", other.Description)
}

func TestResolveTitleFallsBackToSlug(t *testing.T) {
	b := base("living/1.webp")
	require.Empty(t, b.Title)
	assert.Equal(t, "1", Catalog{}.Resolve(b, "living").Title)
}

func TestResolveManualTags(t *testing.T) {
	b := base("bedrooms/master/bed-ocean-view.webp")
	c := Catalog{"bed-ocean-view": {Tags: []string{"featured", "master", "featured"}}}

	r := c.Resolve(b, "bedrooms")
	assert.Equal(t, []string{"featured", "master", "bedrooms"}, r.Tags)
	assert.NotContains(t, r.Tags, "view")
}

func TestResolveIsPure(t *testing.T) {
	b := base("bedrooms/garden-king/view-sunset-1.webp")
	c := Catalog{"view-sunset-1": {Default: &Copy{Description: String("Garden outlook")}}}

	first := c.Resolve(b, "bedrooms")
	first.Tags[0] = "mutated"
	first.Folders[0] = "mutated"

	second := c.Resolve(b, "bedrooms")
	third := c.Resolve(b, "bedrooms")
	assert.Equal(t, second, third)
	assert.Equal(t, "bedrooms", second.Tags[0])
	assert.Equal(t, "bedrooms", b.Folders[0])
}

func TestByFolder(t *testing.T) {
	all := bases("living/lounge-10.webp", "living/lounge-2.webp", "bedrooms/main.webp")
	c := Catalog{"lounge-2": {PerSection: map[string]Copy{"living": {Title: String("Lounge")}}}}

	rs := c.ByFolder(all, "living", "")
	require.Len(t, rs, 2)
	assert.Equal(t, "lounge-2", rs[0].Slug)
	assert.Equal(t, "Lounge", rs[0].Title)
	assert.Equal(t, "lounge-10", rs[1].Slug)

	assert.Empty(t, c.ByFolder(all, "pool", "gallery"))
}

func TestTagIndex(t *testing.T) {
	rs := Catalog{}.ResolveMany(bases("bedrooms/ocean-view.webp", "living/lounge-view.webp"), "gallery")
	idx := TagIndex(rs)
	assert.Equal(t, 2, idx["view"])
	assert.Equal(t, 1, idx["bedrooms"])
	assert.Equal(t, 1, idx["interior"])
}

func TestToLightbox(t *testing.T) {
	assert.Empty(t, ToLightbox())

	c := Catalog{"pool": {Default: &Copy{Description: String("Infinity pool")}}}
	ps := ToLightbox(c.ResolveMany(bases("exterior/pool.webp"), "gallery")...)
	require.Len(t, ps, 1)
	assert.Equal(t, "exterior/pool.webp", ps[0].Src)
	assert.Equal(t, "Pool", ps[0].Title)
	assert.Equal(t, "Infinity pool", ps[0].Description)
	assert.Equal(t, "Exterior", ps[0].Category)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, c)

	c, err = Load("")
	require.NoError(t, err)
	assert.Empty(t, c)

	p := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
villa-exterior-1:
  tags: [outdoor, exterior, view]
  default:
    title: Villa Exterior
    description: Stunning architecture with panoramic ocean views
    category: Exterior
master-suite-1:
  perSection:
    gallery: {category: Bedrooms}
    bedrooms: {description: "Private balcony & ocean views"}
`), 0o644))

	c, err = Load(p)
	require.NoError(t, err)
	require.Len(t, c, 2)

	ext := c["villa-exterior-1"]
	assert.Equal(t, []string{"outdoor", "exterior", "view"}, ext.Tags)
	require.NotNil(t, ext.Default)
	assert.Equal(t, "Villa Exterior", *ext.Default.Title)
	assert.Nil(t, ext.PerSection)

	ms := c["master-suite-1"]
	assert.Nil(t, ms.Tags)
	assert.Nil(t, ms.Default)
	assert.Equal(t, "Bedrooms", *ms.PerSection["gallery"].Category)
	assert.Nil(t, ms.PerSection["gallery"].Title)
	assert.Equal(t, "Private balcony & ocean views", *ms.PerSection["bedrooms"].Description)

	require.NoError(t, os.WriteFile(p, []byte("- not\n- a map\n"), 0o644))
	_, err = Load(p)
	assert.Error(t, err)
}

func TestLint(t *testing.T) {
	all := bases("bedrooms/master-suite-1.webp", "exterior/villa-exterior-1.webp")
	c := Catalog{
		"master-suite-1":  {},
		"vila-exterior-1": {},
		"pool-7":          {},
	}

	orphans := c.Lint(all)
	require.Len(t, orphans, 2)
	assert.Equal(t, "pool-7", orphans[0].Key)
	assert.Equal(t, "vila-exterior-1", orphans[1].Key)
	assert.Equal(t, "villa-exterior-1", orphans[1].Closest)
	assert.Equal(t, 1, orphans[1].Distance)

	none := c.Lint(nil)
	require.Len(t, none, 3)
	assert.Empty(t, none[0].Closest)
	assert.Equal(t, -1, none[0].Distance)
}
