// Package viewport tracks which page section is in view and which
// scroll-animated elements have been revealed.
//
// The package has no browser dependency. cmd/viewport feeds it measurements
// from the DOM when compiled for js/wasm.
package viewport

const (
	// Lookahead is added to the scroll offset before matching sections, so a
	// section becomes active slightly before its top reaches the viewport edge.
	Lookahead = 100.0
	// RevealMargin is the distance from the viewport bottom an element's top
	// must cross before it is revealed.
	RevealMargin = 150.0
	// DefaultSection is active before the first scroll event.
	DefaultSection = "home"
)

// Extent is the vertical span of a named section in document coordinates.
type Extent struct {
	ID     string
	Top    float64
	Height float64
}

func (e Extent) contains(y float64) bool {
	return y >= e.Top && y < e.Top+e.Height
}

// Element is a scroll-animated element. Top is relative to the viewport, as
// reported by getBoundingClientRect.
type Element struct {
	Key string
	Top float64
}

// Frame is one snapshot of the page taken on a scroll event.
type Frame struct {
	ScrollY        float64
	ViewportHeight float64
	Sections       []Extent
	Elements       []Element
}

// Change describes what a frame altered.
type Change struct {
	Active        string
	ActiveChanged bool
	Revealed      []string
}

// Active returns the section containing scrollY+Lookahead. When extents
// overlap the last match wins. With no match current is returned unchanged.
func Active(sections []Extent, scrollY float64, current string) string {
	pos := scrollY + Lookahead
	active := current
	for _, s := range sections {
		if s.contains(pos) {
			active = s.ID
		}
	}
	return active
}

// Revealed reports whether an element whose top sits at top has crossed the
// reveal threshold of a viewport of the given height.
func Revealed(top, viewportHeight float64) bool {
	return top < viewportHeight-RevealMargin
}

// Tracker keeps scroll-spy and reveal state across frames. It is not safe for
// concurrent use; the browser drives it from a single event loop.
type Tracker struct {
	active   string
	revealed map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		active:   DefaultSection,
		revealed: make(map[string]struct{}),
	}
}

func (t *Tracker) Active() string {
	return t.active
}

// IsRevealed reports whether key has ever been revealed.
func (t *Tracker) IsRevealed(key string) bool {
	_, ok := t.revealed[key]
	return ok
}

// Update applies a frame. Revealed keys are only ever added, so an element
// stays visible once it has been shown.
func (t *Tracker) Update(f Frame) Change {
	prev := t.active
	t.active = Active(f.Sections, f.ScrollY, t.active)

	var revealed []string
	for _, el := range f.Elements {
		if t.IsRevealed(el.Key) {
			continue
		}
		if Revealed(el.Top, f.ViewportHeight) {
			t.revealed[el.Key] = struct{}{}
			revealed = append(revealed, el.Key)
		}
	}

	return Change{
		Active:        t.active,
		ActiveChanged: t.active != prev,
		Revealed:      revealed,
	}
}
