package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/app"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/gallery"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

const preloadTimeout = 10 * time.Second

// selectFile is swapped out in tests.
var selectFile = func() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Site Manifest"),
		zenity.FileFilters{{
			Name:     "Site manifest",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
}

// openSiteDialog asks for a manifest file and switches the page to it.
// Cancelling the dialog is not an error.
func (g *Game) openSiteDialog(now time.Time) error {
	path, err := selectFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadSite(path, now)
}

func (g *Game) loadSite(path string, now time.Time) error {
	m, err := site.Load(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()
	decoded, err := gallery.Preload(ctx, os.DirFS(filepath.Dir(path)), app.ImagePaths(m))
	if err != nil {
		return err
	}
	for p, ferr := range decoded.Failed {
		g.log.Debug("gallery image skipped", zap.String("path", p), zap.Error(ferr))
	}

	g.images = decoded.Images
	g.textures = make(map[string]*ebiten.Image)
	g.sitePath = path
	g.lastErr = nil
	g.reload(m, now)
	g.log.Info("site manifest opened", zap.String("path", path), zap.Int("images", len(decoded.Images)))

	if g.settings.Watch {
		g.Close()
		g.watch(path)
	}
	return nil
}

func (g *Game) watch(path string) {
	w, err := site.Watch(path, config.ManifestDebounce, g.log)
	if err != nil {
		g.log.Warn("site manifest will not hot-reload", zap.String("path", path), zap.Error(err))
		return
	}
	g.watcher = w
}
