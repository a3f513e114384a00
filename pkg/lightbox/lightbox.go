// Package lightbox implements the full-screen photo viewer shared by every section of the page.
package lightbox

import (
	"context"

	"k8s.io/klog/v2"
)

// Photo is what the viewer displays.
type Photo struct {
	Src         string
	Alt         string
	Title       string
	Description string
	Category    string
}

// Event is a page event the viewer listens to while open.
type Event string

const (
	KeyDown           Event = "keydown"
	Resize            Event = "resize"
	OrientationChange Event = "orientationchange"
)

// Keys the viewer responds to.
const (
	KeyClose = "Escape"
	KeyPrev  = "ArrowLeft"
	KeyNext  = "ArrowRight"
)

// Fit is how the image is sized on screen.
type Fit string

const (
	// FitHeight fills the viewport height, used on landscape viewports.
	FitHeight Fit = "height"
	// FitWidth fills the viewport width, used on portrait viewports.
	FitWidth Fit = "width"
)

// Host is the page the viewer is shown on.
type Host interface {
	// Overflow returns the current background scroll behaviour.
	Overflow() string
	SetOverflow(string)
	// Viewport returns the current viewport width and height.
	Viewport() (int, int)
	// Listen registers fn for event and returns a function that removes it.
	// For KeyDown events the argument is the key name.
	Listen(event Event, fn func(arg string)) (remove func())
}

// Viewer is the lightbox state machine. It is either closed, or open on a non-empty sequence
// of photos with 0 <= index < len(photos). It is not safe for concurrent use.
type Viewer struct {
	host Host

	photos []Photo
	index  int

	landscape bool
	overflow  string
	removers  []func()
}

// New returns a closed viewer displayed on host.
func New(host Host) *Viewer {
	return &Viewer{host: host}
}

// IsOpen reports whether a photo is being shown.
func (v *Viewer) IsOpen() bool {
	return len(v.photos) > 0
}

// Open shows photos starting at start, replacing whatever was open. An empty sequence or an
// out-of-range start leaves the viewer closed and returns false.
func (v *Viewer) Open(photos []Photo, start int) bool {
	if len(photos) == 0 || start < 0 || start >= len(photos) {
		klog.V(1).Infof("lightbox: ignoring open of %d photos at %d", len(photos), start)
		v.Close()
		return false
	}

	if !v.IsOpen() {
		v.attach()
	}

	v.photos = append([]Photo(nil), photos...)
	v.index = start
	klog.V(2).Infof("lightbox: open %d/%d", start, len(photos))
	return true
}

// OpenFirst is Open at the first photo.
func (v *Viewer) OpenFirst(photos []Photo) bool {
	return v.Open(photos, 0)
}

// Close hides the viewer, restores background scrolling and removes every listener.
func (v *Viewer) Close() {
	if !v.IsOpen() {
		return
	}

	v.host.SetOverflow(v.overflow)
	for _, remove := range v.removers {
		remove()
	}
	v.removers = nil
	v.photos = nil
	v.index = 0
	klog.V(2).Infof("lightbox: closed")
}

// Prev moves to the previous photo, wrapping from the first to the last.
func (v *Viewer) Prev() {
	if !v.IsOpen() {
		return
	}
	v.index, _ = v.Neighbors()
}

// Next moves to the next photo, wrapping from the last to the first.
func (v *Viewer) Next() {
	if !v.IsOpen() {
		return
	}
	_, v.index = v.Neighbors()
}

// Neighbors returns the indexes Prev and Next would move to.
func (v *Viewer) Neighbors() (prev int, next int) {
	n := len(v.photos)
	if n == 0 {
		return 0, 0
	}
	return (v.index - 1 + n) % n, (v.index + 1) % n
}

// Index returns the current position.
func (v *Viewer) Index() int {
	return v.index
}

// Photos returns the open sequence, or nil when closed.
func (v *Viewer) Photos() []Photo {
	return v.photos
}

// Current returns the photo on screen.
func (v *Viewer) Current() (Photo, bool) {
	if !v.IsOpen() {
		return Photo{}, false
	}
	return v.photos[v.index], true
}

// Fit returns how the current photo should be sized for the viewport orientation.
func (v *Viewer) Fit() Fit {
	if v.landscape {
		return FitHeight
	}
	return FitWidth
}

// HandleKey applies a key press and reports whether the viewer used it.
func (v *Viewer) HandleKey(key string) bool {
	if !v.IsOpen() {
		return false
	}

	switch key {
	case KeyClose:
		v.Close()
	case KeyPrev:
		v.Prev()
	case KeyNext:
		v.Next()
	default:
		return false
	}
	return true
}

func (v *Viewer) orient() {
	w, h := v.host.Viewport()
	v.landscape = w > h
}

// attach runs on the closed to open edge.
func (v *Viewer) attach() {
	v.overflow = v.host.Overflow()
	v.host.SetOverflow("hidden")
	v.orient()

	v.removers = []func(){
		v.host.Listen(KeyDown, func(key string) { v.HandleKey(key) }),
		v.host.Listen(Resize, func(string) { v.orient() }),
		v.host.Listen(OrientationChange, func(string) { v.orient() }),
	}
}

type ctxKey struct{}

// NewContext returns a context carrying v.
func NewContext(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the viewer carried by ctx. It panics when there is none.
func FromContext(ctx context.Context) *Viewer {
	v, ok := ctx.Value(ctxKey{}).(*Viewer)
	if !ok || v == nil {
		panic("lightbox: FromContext called without a viewer in scope; wrap the context with lightbox.NewContext")
	}
	return v
}
