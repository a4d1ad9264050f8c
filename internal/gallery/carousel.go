package gallery

import (
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

// Carousel steps through each project card's inline images.
type Carousel struct {
	doc     *page.Document
	catalog Catalog
	timers  Delayer
	index   map[string]int
}

func NewCarousel(doc *page.Document, catalog Catalog, timers Delayer) *Carousel {
	return &Carousel{
		doc:     doc,
		catalog: catalog,
		timers:  timers,
		index:   make(map[string]int),
	}
}

func (c *Carousel) Index(project string) int { return c.index[project] }

// Change moves project's image by direction, wrapping at both ends. The
// indicator updates immediately; the image fades out, swaps after the fade
// delay, and fades back in.
func (c *Carousel) Change(project string, direction int) {
	gallery := c.catalog[project]
	if len(gallery) == 0 {
		return
	}

	i := c.index[project] + direction
	if i < 0 {
		i = len(gallery) - 1
	} else if i >= len(gallery) {
		i = 0
	}
	c.index[project] = i

	if img := c.doc.ByID(page.ImageID(project)); img != nil {
		img.SetStyle("opacity", "0")
		c.timers.After(config.ImageFadeDelay, func() {
			img.SetAttr(page.AttrSrc, gallery[c.index[project]])
			img.SetStyle("opacity", "1")
		})
	}

	if ind := c.doc.ByID(page.IndicatorID(project)); ind != nil {
		ind.SetText(counterText(i, len(gallery)))
	}
}
