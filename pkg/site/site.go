// Package site assembles the Everview villa photos into sections and renders the static website.
package site

// Config holds configuration for a site build.
type Config struct {
	InDir       string
	OutDir      string
	CatalogPath string
	// StaticDir holds extra files (logos, icons) copied verbatim under "_/".
	StaticDir string

	Title       string
	Description string

	// Thumbnails overrides the default thumbnail sizes. Empty disables thumbnails.
	Thumbnails map[string]ThumbOpts
	// ViewWidth and ViewHeight are the viewport the lightbox pages are laid out for.
	ViewWidth  int
	ViewHeight int
}

// DefaultConfig returns a Config with the stock titles, thumbnails and viewport.
func DefaultConfig() *Config {
	return &Config{
		Title:       "Everview",
		Description: "A private luxury villa between the mountains and the ocean.",
		Thumbnails:  defaultThumbOpts,
		ViewWidth:   1920,
		ViewHeight:  1080,
	}
}
