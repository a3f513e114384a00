package site

import (
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	// registers the decoders bild's imgio.Open relies on
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/cespare/xxhash/v2"
	"github.com/everview/everview/pkg/photo"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// ThumbOpts are thumbnail options. A zero X or Y scales to the other dimension.
type ThumbOpts struct {
	X       int
	Y       int
	Quality int
}

// ThumbMeta describes a thumbnail.
type ThumbMeta struct {
	X       int
	Y       int
	RelPath string
	Path    string
}

var defaultThumbOpts = map[string]ThumbOpts{
	"Grid": {Y: 360, Quality: 80},
	"Card": {Y: 640, Quality: 85},
	"View": {X: 2048, Quality: 85},
}

// hashLen is how many hex digits of the content hash go into thumbnail names.
var hashLen = 8

func urlSafePath(p string) string {
	return strings.NewReplacer(" ", "_", "#", "_", "?", "_", "%", "_").Replace(p)
}

// photoRelPath is where the original of b is published, relative to the output root.
func photoRelPath(b photo.Base) string {
	return urlSafePath(path.Join("photos", b.Src))
}

func contentHash(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64())[:hashLen], nil
}

// staleReason explains why the published copy dst of src needs refreshing, or returns "".
func staleReason(src os.FileInfo, dst os.FileInfo) string {
	switch {
	case dst == nil:
		return "missing"
	case src.Size() != dst.Size():
		return "size mismatch"
	case src.ModTime().After(dst.ModTime()):
		return "source newer"
	}
	return ""
}

// publish copies the original of b into outDir unless an up to date copy is already there.
func publish(b photo.Base, outDir string) error {
	dest := filepath.Join(outDir, filepath.FromSlash(photoRelPath(b)))

	src, err := os.Stat(b.InPath)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	dst, err := os.Stat(dest)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat: %w", err)
	}

	why := staleReason(src, dst)
	if why == "" {
		return nil
	}
	klog.V(1).Infof("publishing %s: %s", b.Src, why)
	if err := copy.Copy(b.InPath, dest); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// thumbnails publishes b and returns its thumbnails by name. Thumbnail names carry the
// content hash of the source, so any thumbnail already on disk under that name is reused.
func thumbnails(b photo.Base, outDir string, opts map[string]ThumbOpts) (map[string]ThumbMeta, error) {
	if err := publish(b, outDir); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	thumbs := map[string]ThumbMeta{}
	if len(opts) == 0 {
		return thumbs, nil
	}

	hash, err := contentHash(b.InPath)
	if err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}

	var src image.Image
	for name, t := range opts {
		rel := thumbRelPath(b, t, hash)
		if m, ok := cachedThumb(outDir, rel); ok {
			thumbs[name] = m
			continue
		}

		if src == nil {
			if src, err = imgio.Open(b.InPath); err != nil {
				return nil, fmt.Errorf("open %s: %w", b.InPath, err)
			}
		}

		m, err := renderThumb(src, outDir, rel, t)
		if err != nil {
			return nil, fmt.Errorf("%s thumbnail: %w", name, err)
		}
		thumbs[name] = m
	}

	return thumbs, nil
}

// thumbSize scales bounds to t. A zero X or Y keeps the aspect ratio; both zero keeps the size.
func thumbSize(bounds image.Rectangle, t ThumbOpts) (int, int, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("empty image %v", bounds)
	}

	x, y := t.X, t.Y
	switch {
	case x == 0 && y == 0:
		x, y = w, h
	case x == 0:
		x = w * y / h
	case y == 0:
		y = h * x / w
	}
	return max(x, 1), max(y, 1), nil
}

// renderThumb resizes src for t and writes it as a JPEG at rel under outDir.
func renderThumb(src image.Image, outDir string, rel string, t ThumbOpts) (ThumbMeta, error) {
	x, y, err := thumbSize(src.Bounds(), t)
	if err != nil {
		return ThumbMeta{}, err
	}

	full := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return ThumbMeta{}, fmt.Errorf("mkdir: %w", err)
	}

	resized := transform.Resize(src, x, y, transform.Lanczos)
	if err := imgio.Save(full, resized, imgio.JPEGEncoder(t.Quality)); err != nil {
		return ThumbMeta{}, fmt.Errorf("save: %w", err)
	}

	klog.V(1).Infof("rendered %s (%dx%d)", rel, x, y)
	return ThumbMeta{X: x, Y: y, RelPath: rel, Path: full}, nil
}

// cachedThumb returns the thumbnail at rel under outDir if one was rendered by an earlier build.
func cachedThumb(outDir string, rel string) (ThumbMeta, bool) {
	full := filepath.Join(outDir, filepath.FromSlash(rel))
	f, err := os.Open(full)
	if err != nil {
		return ThumbMeta{}, false
	}
	defer f.Close()

	ic, _, err := image.DecodeConfig(f)
	if err != nil {
		klog.Warningf("re-rendering unreadable thumbnail %s: %v", full, err)
		return ThumbMeta{}, false
	}
	return ThumbMeta{X: ic.Width, Y: ic.Height, RelPath: rel, Path: full}, true
}

// thumbRelPath returns a slash-separated path to a thumbnail, named after the source content hash.
func thumbRelPath(b photo.Base, t ThumbOpts, hash string) string {
	dir := path.Join("photos", path.Dir(b.Src), "_")
	dimensions := ""
	if t.X != 0 {
		dimensions = fmt.Sprintf("x%d", t.X)
	}
	if t.Y != 0 {
		dimensions = fmt.Sprintf("y%d", t.Y)
	}

	return urlSafePath(path.Join(dir, fmt.Sprintf("%s@%s_%s.jpg", b.Slug, dimensions, hash)))
}
