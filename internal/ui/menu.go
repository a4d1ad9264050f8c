// Package ui holds the page's navigation and scroll-driven behaviours.
package ui

import (
	"time"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

// Delayer runs fn after d on the frame loop.
type Delayer interface {
	After(d time.Duration, fn func()) schedule.TimerID
}

// Menu is the mobile navigation drawer. Toggles are ignored while a previous
// toggle's transition is still running.
type Menu struct {
	doc      *page.Document
	timers   Delayer
	toggling bool
}

func NewMenu(doc *page.Document, timers Delayer) *Menu {
	return &Menu{doc: doc, timers: timers}
}

func (m *Menu) IsOpen() bool {
	menu := m.doc.ByID(page.IDMobileMenu)
	return menu != nil && menu.HasClass("active")
}

// Busy reports whether a toggle transition is in progress.
func (m *Menu) Busy() bool { return m.toggling }

func (m *Menu) Toggle() {
	if m.toggling {
		return
	}
	m.toggling = true

	menu := m.doc.ByID(page.IDMobileMenu)
	if menu == nil {
		m.toggling = false
		return
	}

	open := menu.ToggleClass("active")
	if toggle := m.doc.First(page.ClassMenuToggle); toggle != nil {
		toggle.ToggleClass("active")
	}
	if btn := m.doc.First(page.ClassMenuButton); btn != nil {
		btn.SetText(menuGlyph(open))
	}
	if open {
		m.doc.Body.SetStyle("overflow", "hidden")
	} else {
		m.doc.Body.SetStyle("overflow", "auto")
	}

	m.timers.After(config.MenuToggleGuard, func() { m.toggling = false })
}

// ToggleFromButton is the floating mobile button's handler, which defers
// the toggle slightly.
func (m *Menu) ToggleFromButton() {
	m.timers.After(config.MenuButtonDelay, m.Toggle)
}

func (m *Menu) Close() {
	menu := m.doc.ByID(page.IDMobileMenu)
	if menu == nil {
		return
	}
	menu.RemoveClass("active")
	if toggle := m.doc.First(page.ClassMenuToggle); toggle != nil {
		toggle.RemoveClass("active")
	}
	if btn := m.doc.First(page.ClassMenuButton); btn != nil {
		btn.SetText(menuGlyph(false))
	}
	m.doc.Body.SetStyle("overflow", "auto")
}

// OnResize closes the drawer once the viewport is wider than the mobile
// breakpoint.
func (m *Menu) OnResize(width float64) {
	if width > config.MobileBreakpoint {
		m.Close()
	}
}

func menuGlyph(open bool) string {
	if open {
		return "✕"
	}
	return "☰"
}
