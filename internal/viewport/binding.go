package viewport

import "strconv"

// Document is the slice of the DOM a Binding reads and writes. cmd/viewport
// implements it with syscall/js.
type Document interface {
	// Scroll returns window.scrollY and window.innerHeight.
	Scroll() (scrollY, viewportHeight float64)
	// Section measures the element with the given id. ok is false when the
	// page has no such element.
	Section(id string) (e Extent, ok bool)
	// AnimatedCount is the number of scroll-animated elements.
	AnimatedCount() int
	// AnimatedTop is the viewport-relative top of animated element i.
	AnimatedTop(i int) float64
	// Reveal marks animated element i visible.
	Reveal(i int)
	// MarkActive highlights the navigation links for section.
	MarkActive(section string)
}

// Binding drives a Tracker from a Document.
type Binding struct {
	doc      Document
	sections []string
	tracker  *Tracker
}

func NewBinding(doc Document, sections []string) *Binding {
	return &Binding{
		doc:      doc,
		sections: sections,
		tracker:  NewTracker(),
	}
}

// Start highlights the default section and runs one pass, so elements
// already in view appear without a scroll.
func (b *Binding) Start() {
	b.doc.MarkActive(b.tracker.Active())
	b.Refresh()
}

// Refresh measures the page and applies whatever changed. It is called on
// every scroll event.
func (b *Binding) Refresh() {
	b.apply(b.tracker.Update(b.frame()))
}

func (b *Binding) frame() Frame {
	var f Frame
	f.ScrollY, f.ViewportHeight = b.doc.Scroll()

	for _, id := range b.sections {
		if e, ok := b.doc.Section(id); ok {
			e.ID = id
			f.Sections = append(f.Sections, e)
		}
	}

	for i := 0; i < b.doc.AnimatedCount(); i++ {
		key := strconv.Itoa(i)
		if b.tracker.IsRevealed(key) {
			continue
		}
		f.Elements = append(f.Elements, Element{Key: key, Top: b.doc.AnimatedTop(i)})
	}
	return f
}

func (b *Binding) apply(c Change) {
	if c.ActiveChanged {
		b.doc.MarkActive(c.Active)
	}
	n := b.doc.AnimatedCount()
	for _, key := range c.Revealed {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= n {
			continue
		}
		b.doc.Reveal(i)
	}
}
