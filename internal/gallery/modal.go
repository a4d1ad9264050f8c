package gallery

import (
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

// Modal is the full-screen image viewer. It tracks one current gallery and
// index; an empty gallery name means no gallery is being browsed.
type Modal struct {
	doc     *page.Document
	catalog Catalog
	timers  Delayer

	gallery string
	index   int
	// closing is the pending hide scheduled by Close, zero when none.
	closing schedule.TimerID
}

func NewModal(doc *page.Document, catalog Catalog, timers Delayer) *Modal {
	return &Modal{doc: doc, catalog: catalog, timers: timers}
}

// Current reports the gallery being browsed and its index.
func (m *Modal) Current() (string, int) { return m.gallery, m.index }

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool {
	modal := m.doc.ByID(page.IDModal)
	return modal != nil && modal.HasClass("active")
}

// Open shows image index of the named gallery.
func (m *Modal) Open(name string, index int) {
	gallery := m.catalog[name]
	if len(gallery) == 0 {
		return
	}
	index = min(max(index, 0), len(gallery)-1)
	src, err := m.catalog.Image(name, index)
	if err != nil {
		return
	}

	m.gallery = name
	m.index = index

	modal := m.doc.ByID(page.IDModal)
	img := m.doc.ByID(page.IDModalImage)
	if modal == nil || img == nil {
		return
	}
	m.cancelClose()

	img.SetAttr(page.AttrSrc, src)
	modal.AddClass("active")
	m.doc.Body.SetStyle("overflow", "hidden")

	if counter := m.doc.ByID(page.IDImageCounter); counter != nil {
		counter.SetText(counterText(index, len(gallery)))
	}

	prev, next := m.doc.First(page.ClassPrevButton), m.doc.First(page.ClassNextButton)
	if prev != nil && next != nil {
		display := "none"
		if len(gallery) > 1 {
			display = "block"
		}
		prev.SetStyle("display", display)
		next.SetStyle("display", display)
		prev.Disabled = index == 0
		next.Disabled = index == len(gallery)-1
	}

	m.zoomIn(img)
}

// OpenSingle shows one standalone image with navigation hidden.
func (m *Modal) OpenSingle(src string) {
	modal := m.doc.ByID(page.IDModal)
	img := m.doc.ByID(page.IDModalImage)
	if modal == nil || img == nil {
		return
	}
	m.cancelClose()
	m.gallery = ""
	m.index = 0

	img.SetAttr(page.AttrSrc, src)
	modal.AddClass("active")
	m.doc.Body.SetStyle("overflow", "hidden")

	if prev := m.doc.First(page.ClassPrevButton); prev != nil {
		prev.SetStyle("display", "none")
	}
	if next := m.doc.First(page.ClassNextButton); next != nil {
		next.SetStyle("display", "none")
	}
	if counter := m.doc.ByID(page.IDImageCounter); counter != nil {
		counter.SetStyle("display", "none")
	}

	m.zoomIn(img)
}

func (m *Modal) zoomIn(img *page.Element) {
	img.SetStyle("transform", "scale(0.8)")
	img.SetStyle("opacity", "0")
	m.timers.After(config.ModalOpenDelay, func() {
		img.SetStyle("transition", "all 0.3s ease")
		img.SetStyle("transform", "scale(1)")
		img.SetStyle("opacity", "1")
	})
}

// Next advances within the current gallery; it does not wrap.
func (m *Modal) Next() {
	if m.gallery == "" {
		return
	}
	if m.index < len(m.catalog[m.gallery])-1 {
		m.index++
		m.update()
	}
}

// Previous steps back within the current gallery; it does not wrap.
func (m *Modal) Previous() {
	if m.gallery == "" {
		return
	}
	if m.index > 0 {
		m.index--
		m.update()
	}
}

func (m *Modal) update() {
	gallery := m.catalog[m.gallery]
	img := m.doc.ByID(page.IDModalImage)
	if img == nil || len(gallery) == 0 {
		return
	}

	img.SetStyle("opacity", "0")
	img.SetStyle("transform", "scale(0.95)")

	m.timers.After(config.ImageFadeDelay, func() {
		// The modal may have been closed while fading.
		if m.gallery == "" {
			return
		}
		gallery := m.catalog[m.gallery]
		src, err := m.catalog.Image(m.gallery, m.index)
		if err != nil {
			return
		}
		img.SetAttr(page.AttrSrc, src)

		if counter := m.doc.ByID(page.IDImageCounter); counter != nil {
			counter.SetText(counterText(m.index, len(gallery)))
		}
		prev, next := m.doc.First(page.ClassPrevButton), m.doc.First(page.ClassNextButton)
		if prev != nil && next != nil {
			prev.Disabled = m.index == 0
			next.Disabled = m.index == len(gallery)-1
		}

		img.SetStyle("opacity", "1")
		img.SetStyle("transform", "scale(1)")
	})
}

// Close zooms the image out and hides the modal once the transition ends.
func (m *Modal) Close() {
	modal := m.doc.ByID(page.IDModal)
	img := m.doc.ByID(page.IDModalImage)
	if modal == nil || img == nil {
		return
	}

	img.SetStyle("transform", "scale(0.8)")
	img.SetStyle("opacity", "0")

	m.cancelClose()
	m.closing = m.timers.After(config.ModalCloseDelay, func() {
		m.closing = 0
		modal.RemoveClass("active")
		m.doc.Body.SetStyle("overflow", "auto")
		m.gallery = ""
		m.index = 0
		if counter := m.doc.ByID(page.IDImageCounter); counter != nil {
			counter.SetStyle("display", "block")
		}
	})
}

// cancelClose drops a hide still pending from Close, so reopening during
// the zoom-out keeps the modal up.
func (m *Modal) cancelClose() {
	if m.closing != 0 {
		m.timers.Cancel(m.closing)
		m.closing = 0
	}
}
