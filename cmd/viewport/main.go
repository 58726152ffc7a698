//go:build js && wasm

// Command viewport drives scroll-spy navigation highlighting and
// reveal-on-scroll animations in the browser.
//
//	GOOS=js GOARCH=wasm go build -o static/js/viewport.wasm ./cmd/viewport
package main

import (
	"syscall/js"

	"github.com/vistaarbengaluru/vistaar/internal/content"
	"github.com/vistaarbengaluru/vistaar/internal/viewport"
)

// document implements viewport.Document over the live DOM.
type document struct {
	window   js.Value
	doc      js.Value
	animated []js.Value
}

func newDocument() *document {
	d := &document{
		window: js.Global(),
		doc:    js.Global().Get("document"),
	}
	nodes := d.doc.Call("querySelectorAll", ".animate-on-scroll")
	for i := 0; i < nodes.Length(); i++ {
		d.animated = append(d.animated, nodes.Index(i))
	}
	return d
}

func (d *document) Scroll() (float64, float64) {
	return d.window.Get("scrollY").Float(), d.window.Get("innerHeight").Float()
}

func (d *document) Section(id string) (viewport.Extent, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() {
		return viewport.Extent{}, false
	}
	return viewport.Extent{
		Top:    el.Get("offsetTop").Float(),
		Height: el.Get("offsetHeight").Float(),
	}, true
}

func (d *document) AnimatedCount() int {
	return len(d.animated)
}

func (d *document) AnimatedTop(i int) float64 {
	return d.animated[i].Call("getBoundingClientRect").Get("top").Float()
}

func (d *document) Reveal(i int) {
	d.animated[i].Get("classList").Call("add", "visible")
}

func (d *document) MarkActive(section string) {
	links := d.doc.Call("querySelectorAll", "[data-nav]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		link.Get("classList").Call("toggle", "active", link.Get("dataset").Get("nav").String() == section)
	}
}

func main() {
	b := viewport.NewBinding(newDocument(), content.SectionIDs)

	onScroll := js.FuncOf(func(this js.Value, args []js.Value) any {
		b.Refresh()
		return nil
	})
	js.Global().Call("addEventListener", "scroll", onScroll)

	b.Start()

	select {}
}
