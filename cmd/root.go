package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/app"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/gallery"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/logging"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/prefs"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

var (
	configPath string
	sitePath   string
	seed       uint64
	verbose    bool

	logger   *zap.Logger
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio particle backdrop and gallery viewer",
	Long: `Renders the portfolio's particle-network backdrop with its project
galleries, language toggle and navigation, in a window or a terminal.

Run without a subcommand to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		path := configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				return fmt.Errorf("locate settings: %w", err)
			}
		}
		settings, err = config.Load(path, logger)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			settings.Seed = seed
		}
		if sitePath != "" {
			settings.SitePath = sitePath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.config/portfolio/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&sitePath, "site", "", "site manifest (default built in)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "particle seed, 0 for time based")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}

// newRand seeds the particle source; 0 picks a seed from the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("particle seed", zap.Uint64("seed", seed))
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// openStore opens the preference database, falling back to memory so a
// broken database never stops the page.
func openStore() (prefs.Store, func()) {
	path := settings.PrefsPath
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			logger.Warn("preferences will not persist", zap.Error(err))
			return prefs.NewMemory(), func() {}
		}
		path = filepath.Join(dir, "prefs.db")
	}
	db, err := prefs.OpenSQLite(path)
	if err != nil {
		logger.Warn("preferences will not persist", zap.String("path", path), zap.Error(err))
		return prefs.NewMemory(), func() {}
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close preferences", zap.Error(err))
		}
	}
}

// imageRoot is the directory gallery paths are relative to.
func imageRoot() string {
	if settings.SitePath == "" {
		return "."
	}
	return filepath.Dir(settings.SitePath)
}

// preload decodes every image the manifest names. Missing or broken
// images are logged and left out.
func preload(ctx context.Context, m *site.Manifest) (*gallery.Decoded, error) {
	root := imageRoot()
	decoded, err := gallery.Preload(ctx, os.DirFS(root), app.ImagePaths(m))
	if err != nil {
		return nil, fmt.Errorf("preload gallery images: %w", err)
	}
	for p, ferr := range decoded.Failed {
		logger.Debug("gallery image skipped", zap.String("path", p), zap.Error(ferr))
	}
	logger.Info("gallery images loaded",
		zap.String("root", root),
		zap.Int("loaded", len(decoded.Images)),
		zap.Int("skipped", len(decoded.Failed)))
	return decoded, nil
}
