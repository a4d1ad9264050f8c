// Package page is a minimal document model for the portfolio: the elements
// the behaviour layer reads and mutates, addressable by id and class.
package page

import "maps"

// Rect is a layout box in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r, right and bottom edges
// excluded.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Bottom()
}

type Element struct {
	ID       string
	Tag      string
	Text     string
	HTML     string
	Disabled bool
	Rect     Rect

	classes map[string]bool
	attrs   map[string]string
	style   map[string]string
}

func NewElement(tag, id string, classes ...string) *Element {
	e := &Element{
		ID:      id,
		Tag:     tag,
		classes: make(map[string]bool),
		attrs:   make(map[string]string),
		style:   make(map[string]string),
	}
	for _, c := range classes {
		e.classes[c] = true
	}
	return e
}

func (e *Element) HasClass(c string) bool { return e.classes[c] }

func (e *Element) AddClass(c string) { e.classes[c] = true }

func (e *Element) RemoveClass(c string) { delete(e.classes, c) }

// ToggleClass flips c and reports whether it is now present.
func (e *Element) ToggleClass(c string) bool {
	if e.classes[c] {
		delete(e.classes, c)
		return false
	}
	e.classes[c] = true
	return true
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

// Style returns an inline style property, "" when unset.
func (e *Element) Style(prop string) string { return e.style[prop] }

func (e *Element) SetStyle(prop, value string) { e.style[prop] = value }

// Styles returns a copy of the inline style map.
func (e *Element) Styles() map[string]string { return maps.Clone(e.style) }

// SetText replaces the content with plain text.
func (e *Element) SetText(s string) {
	e.Text = s
	e.HTML = ""
}

// SetHTML replaces the content with markup.
func (e *Element) SetHTML(s string) {
	e.HTML = s
	e.Text = ""
}

// Content is what the element currently shows, markup or text.
func (e *Element) Content() string {
	if e.HTML != "" {
		return e.HTML
	}
	return e.Text
}

// Displayed reports whether the element is not display:none.
func (e *Element) Displayed() bool { return e.style["display"] != "none" }
