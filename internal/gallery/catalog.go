// Package gallery implements the project image carousels and the
// full-screen image modal.
package gallery

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

var ErrUnknownGallery = errors.New("unknown gallery")

// Delayer runs fn after d on the frame loop. *schedule.Timers implements it.
type Delayer interface {
	After(d time.Duration, fn func()) schedule.TimerID
	Cancel(id schedule.TimerID) bool
}

// Catalog maps a project name to its ordered image paths.
type Catalog map[string][]string

func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Image returns path i of gallery name.
func (c Catalog) Image(name string, i int) (string, error) {
	g, ok := c[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGallery, name)
	}
	if i < 0 || i >= len(g) {
		return "", fmt.Errorf("gallery %q: index %d out of range [0, %d)", name, i, len(g))
	}
	return g[i], nil
}

// Paths lists every image in the catalog once, in name order.
func (c Catalog) Paths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range c.Names() {
		for _, p := range c[name] {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

func counterText(i, n int) string {
	return fmt.Sprintf("%d / %d", i+1, n)
}
