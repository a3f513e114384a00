// Package photo discovers villa photos on disk and derives their base metadata from paths.
package photo

import (
	"time"
)

// DefaultSubfolder is used for photos that sit directly in the photo root.
var DefaultSubfolder = "gallery"

// Extensions are the raster formats picked up by Find.
var Extensions = []string{".webp", ".jpg", ".jpeg", ".png"}

// Base is the raw record derived from a photo's path.
type Base struct {
	// Slug is the filename without its extension.
	Slug string
	// Src is the slash-separated path relative to the photo root.
	Src string
	// Title is derived from the filename.
	Title string
	// Category is the human name of the primary folder.
	Category string
	// Subfolder is the first folder under the root.
	Subfolder string
	// Folders are all folder segments between the root and the file.
	Folders []string

	InPath  string
	ModTime time.Time
}
