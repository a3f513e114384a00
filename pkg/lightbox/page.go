package lightbox

import "sort"

// Page is an in-memory Host. It is what the static renderer drives the viewer against.
type Page struct {
	overflow string
	width    int
	height   int

	next      int
	listeners map[Event]map[int]func(string)
}

// NewPage returns a page with the given viewport and normal scrolling.
func NewPage(width, height int) *Page {
	return &Page{
		overflow:  "auto",
		width:     width,
		height:    height,
		listeners: map[Event]map[int]func(string){},
	}
}

func (p *Page) Overflow() string {
	return p.overflow
}

func (p *Page) SetOverflow(s string) {
	p.overflow = s
}

func (p *Page) Viewport() (int, int) {
	return p.width, p.height
}

func (p *Page) Listen(event Event, fn func(string)) func() {
	id := p.next
	p.next++
	if p.listeners[event] == nil {
		p.listeners[event] = map[int]func(string){}
	}
	p.listeners[event][id] = fn
	return func() {
		delete(p.listeners[event], id)
	}
}

// Listeners returns how many listeners are registered for event.
func (p *Page) Listeners(event Event) int {
	return len(p.listeners[event])
}

// Press dispatches a key press.
func (p *Page) Press(key string) {
	p.dispatch(KeyDown, key)
}

// SetViewport changes the viewport and dispatches a resize.
func (p *Page) SetViewport(width, height int) {
	p.width = width
	p.height = height
	p.dispatch(Resize, "")
}

// Rotate swaps the viewport dimensions and dispatches an orientation change.
func (p *Page) Rotate() {
	p.width, p.height = p.height, p.width
	p.dispatch(OrientationChange, "")
}

// dispatch calls listeners in registration order. Listeners may remove themselves.
func (p *Page) dispatch(event Event, arg string) {
	ids := []int{}
	for id := range p.listeners[event] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := p.listeners[event][id]; ok {
			fn(arg)
		}
	}
}
