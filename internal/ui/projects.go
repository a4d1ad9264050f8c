package ui

import (
	"time"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

// Picker chooses the variant for the current language.
type Picker interface {
	Pick(en, fr string) string
}

// Projects expands and collapses the hidden project cards.
type Projects struct {
	doc    *page.Document
	lang   Picker
	scroll *Scroll
}

func NewProjects(doc *page.Document, lang Picker, scroll *Scroll) *Projects {
	return &Projects{doc: doc, lang: lang, scroll: scroll}
}

func (p *Projects) Expanded() bool {
	btn := p.doc.ByID(page.IDShowMore)
	return btn != nil && btn.HasClass("active")
}

// ToggleMore shows or hides the extra projects. Collapsing scrolls back to
// the projects section.
func (p *Projects) ToggleMore(now time.Time) {
	btn := p.doc.ByID(page.IDShowMore)
	if btn == nil {
		return
	}
	showing := btn.HasClass("active")

	display := "flex"
	if showing {
		display = "none"
	}
	for _, e := range p.doc.ByClass(page.ClassProjectHidden) {
		e.SetStyle("display", display)
	}

	label := p.doc.ByID(page.IDShowMoreLabel)
	if showing {
		btn.RemoveClass("active")
		p.relabel(label, "Show More Projects", "Voir Plus de Projets")
		if section := p.doc.ByID(page.IDProjects); section != nil {
			p.scroll.SmoothTo(section.Rect.Y, now)
		}
	} else {
		btn.AddClass("active")
		p.relabel(label, "Show Less", "Voir Moins")
	}
}

func (p *Projects) relabel(label *page.Element, en, fr string) {
	if label == nil {
		return
	}
	label.SetAttr(page.AttrEN, en)
	label.SetAttr(page.AttrFR, fr)
	label.SetText(p.lang.Pick(en, fr))
}
