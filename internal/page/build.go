package page

import (
	"fmt"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

// Element ids and classes the behaviour layer looks up.
const (
	IDNavbar        = "navbar"
	IDBackToTop     = "backToTop"
	IDLangButton    = "lang-btn"
	IDLangMobile    = "lang-btn-mobile"
	IDMobileMenu    = "mobileMenu"
	IDMobileMenuBtn = "mobileMenuBtn"
	IDModal         = "imageModal"
	IDModalImage    = "modalImage"
	IDImageCounter  = "imageCounter"
	IDShowMore      = "showMoreBtn"
	IDShowMoreLabel = "showMoreBtn-label"
	IDProjects      = "projects"

	ClassScrollIndicator = "scroll-indicator"
	ClassMenuToggle      = "mobile-menu-toggle"
	ClassMenuButton      = "mobile-menu-button"
	ClassMenuLink        = "mobile-menu-link"
	ClassNavLink         = "nav-link"
	ClassPrevButton      = "prev-btn"
	ClassNextButton      = "next-btn"
	ClassHero            = "hero"
	ClassProjectCard     = "project-card"
	ClassProjectHidden   = "project-hidden"
	ClassSkillItem       = "skill-item"
	ClassSection         = "section"

	AttrEN      = "data-en"
	AttrFR      = "data-fr"
	AttrHref    = "href"
	AttrGallery = "data-gallery"
	AttrSingle  = "data-single"
	AttrSrc     = "src"
)

const (
	cardWidth, cardHeight   = 360.0, 380.0
	cardGap                 = 40.0
	cardsPerRow             = 3
	skillWidth, skillHeight = 160.0, 60.0
	skillsPerRow            = 6
	sectionHeaderHeight     = 120.0
	showMoreWidth           = 240.0
	showMoreHeight          = 44.0
)

// ImageID is the id of a project's inline image.
func ImageID(project string) string { return project + "-image" }

// IndicatorID is the id of a project's "i / n" indicator.
func IndicatorID(project string) string { return project + "-indicator" }

func TitleID(project string) string { return project + "-title" }

// Build lays out the portfolio document for m in a viewport of the given size.
func Build(m *site.Manifest, viewportW, viewportH float64) *Document {
	d := NewDocument(viewportW, viewportH, m.ContentHeight)

	d.Append(NewElement("nav", IDNavbar))
	d.Append(NewElement("div", "", ClassScrollIndicator))
	d.Append(NewElement("button", IDLangButton)).SetText("FR")
	d.Append(NewElement("button", IDLangMobile)).SetText("FR")
	d.Append(NewElement("button", "", ClassMenuToggle))
	d.Append(NewElement("button", IDMobileMenuBtn, ClassMenuButton)).SetText("☰")
	d.Append(NewElement("div", IDMobileMenu, "mobile-menu"))
	d.Append(NewElement("button", IDBackToTop))

	hero := d.Append(NewElement("div", "", ClassHero))
	hero.Rect = Rect{W: viewportW, H: viewportH}

	for _, s := range m.Sections {
		sec := d.Append(NewElement("section", s.ID, ClassSection))
		sec.Rect = Rect{Y: s.Top, W: viewportW, H: m.SectionHeight(s.ID)}

		nav := d.Append(NewElement("a", "", ClassNavLink))
		nav.SetAttr(AttrHref, "#"+s.ID)
		link := d.Append(NewElement("a", "", ClassMenuLink))
		link.SetAttr(AttrHref, "#"+s.ID)
	}

	for _, s := range m.Strings {
		e := d.Append(NewElement("span", s.ID))
		e.SetAttr(AttrEN, s.EN)
		e.SetAttr(AttrFR, s.FR)
		e.SetText(s.EN)
	}

	buildProjects(d, m, viewportW)
	buildSkills(d, m, viewportW)

	d.Append(NewElement("div", IDModal))
	d.Append(NewElement("img", IDModalImage))
	d.Append(NewElement("div", IDImageCounter))
	d.Append(NewElement("button", "", ClassPrevButton))
	d.Append(NewElement("button", "", ClassNextButton))

	return d
}

func buildProjects(d *Document, m *site.Manifest, viewportW float64) {
	top := sectionHeaderHeight
	if s, ok := m.Section(IDProjects); ok {
		top += s.Top
	}
	left := gridLeft(viewportW, cardsPerRow, cardWidth, cardGap)

	hasHidden := false
	for i, p := range m.Projects {
		classes := []string{ClassProjectCard}
		if p.Hidden {
			classes = append(classes, ClassProjectHidden)
			hasHidden = true
		}
		card := d.Append(NewElement("article", p.Name, classes...))
		card.Rect = Rect{
			X: left + float64(i%cardsPerRow)*(cardWidth+cardGap),
			Y: top + float64(i/cardsPerRow)*(cardHeight+cardGap),
			W: cardWidth,
			H: cardHeight,
		}
		if p.Hidden {
			card.SetStyle("display", "none")
		}

		title := d.Append(NewElement("h3", TitleID(p.Name)))
		title.SetAttr(AttrEN, p.Title.EN)
		title.SetAttr(AttrFR, p.Title.FR)
		title.SetText(p.Title.EN)

		img := d.Append(NewElement("img", ImageID(p.Name)))
		if gallery := m.Galleries[p.Name]; len(gallery) > 0 {
			card.SetAttr(AttrGallery, p.Name)
			img.SetAttr(AttrSrc, gallery[0])
			d.Append(NewElement("span", IndicatorID(p.Name))).SetText(fmt.Sprintf("1 / %d", len(gallery)))
		} else if p.Single != "" {
			card.SetAttr(AttrSingle, p.Single)
			img.SetAttr(AttrSrc, p.Single)
		}
	}

	if hasHidden {
		rows := (len(m.Projects) + cardsPerRow - 1) / cardsPerRow
		btn := d.Append(NewElement("button", IDShowMore))
		btn.Rect = Rect{
			X: (viewportW - showMoreWidth) / 2,
			Y: top + float64(rows)*(cardHeight+cardGap),
			W: showMoreWidth,
			H: showMoreHeight,
		}
		label := d.Append(NewElement("span", IDShowMoreLabel))
		label.SetAttr(AttrEN, "Show More Projects")
		label.SetAttr(AttrFR, "Voir Plus de Projets")
		label.SetText("Show More Projects")
	}
}

func buildSkills(d *Document, m *site.Manifest, viewportW float64) {
	top := sectionHeaderHeight
	if s, ok := m.Section("skills"); ok {
		top += s.Top
	}
	left := gridLeft(viewportW, skillsPerRow, skillWidth, cardGap/2)
	for i, name := range m.Skills {
		e := d.Append(NewElement("div", "", ClassSkillItem))
		e.SetText(name)
		e.Rect = Rect{
			X: left + float64(i%skillsPerRow)*(skillWidth+cardGap/2),
			Y: top + float64(i/skillsPerRow)*(skillHeight+cardGap/2),
			W: skillWidth,
			H: skillHeight,
		}
	}
}

func gridLeft(viewportW float64, perRow int, w, gap float64) float64 {
	total := float64(perRow)*w + float64(perRow-1)*gap
	if total >= viewportW {
		return 0
	}
	return (viewportW - total) / 2
}
