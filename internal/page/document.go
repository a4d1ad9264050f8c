package page

type Document struct {
	Body *Element

	ViewportW, ViewportH float64
	ScrollY              float64
	ScrollHeight         float64

	elems []*Element
	byID  map[string]*Element
}

func NewDocument(viewportW, viewportH, scrollHeight float64) *Document {
	return &Document{
		Body:         NewElement("body", ""),
		ViewportW:    viewportW,
		ViewportH:    viewportH,
		ScrollHeight: scrollHeight,
		byID:         make(map[string]*Element),
	}
}

// Append adds e in document order. A later element with an existing id
// does not replace the first in id lookups.
func (d *Document) Append(e *Element) *Element {
	d.elems = append(d.elems, e)
	if e.ID != "" {
		if _, dup := d.byID[e.ID]; !dup {
			d.byID[e.ID] = e
		}
	}
	return e
}

// Remove detaches the element with the given id.
func (d *Document) Remove(id string) {
	e := d.byID[id]
	if e == nil {
		return
	}
	delete(d.byID, id)
	for i, x := range d.elems {
		if x == e {
			d.elems = append(d.elems[:i], d.elems[i+1:]...)
			break
		}
	}
}

// ByID returns nil when no element has the id.
func (d *Document) ByID(id string) *Element { return d.byID[id] }

// ByClass returns every element carrying any of the classes, in document order.
func (d *Document) ByClass(classes ...string) []*Element {
	var out []*Element
	for _, e := range d.elems {
		for _, c := range classes {
			if e.HasClass(c) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// First returns the first element carrying class, or nil.
func (d *Document) First(class string) *Element {
	for _, e := range d.elems {
		if e.HasClass(class) {
			return e
		}
	}
	return nil
}

// WithAttrs returns elements carrying every named attribute.
func (d *Document) WithAttrs(names ...string) []*Element {
	var out []*Element
	for _, e := range d.elems {
		ok := true
		for _, n := range names {
			if _, has := e.Attr(n); !has {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// MaxScroll is how far the document can scroll.
func (d *Document) MaxScroll() float64 {
	if m := d.ScrollHeight - d.ViewportH; m > 0 {
		return m
	}
	return 0
}

// ScrollTo clamps y into the scrollable range.
func (d *Document) ScrollTo(y float64) {
	switch {
	case y < 0:
		y = 0
	case y > d.MaxScroll():
		y = d.MaxScroll()
	}
	d.ScrollY = y
}
