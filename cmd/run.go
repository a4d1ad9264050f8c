package cmd

import (
	"github.com/spf13/cobra"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/game"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/sfx"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the portfolio window",
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	m, err := site.Load(settings.SitePath)
	if err != nil {
		return err
	}
	decoded, err := preload(cmd.Context(), m)
	if err != nil {
		return err
	}

	store, closeStore := openStore()
	defer closeStore()

	g := game.New(game.Options{
		Settings: settings,
		Manifest: m,
		SitePath: settings.SitePath,
		Images:   decoded.Images,
		Store:    store,
		Sounds:   sfx.NewPlayer(settings.Sound, settings.Volume, logger),
		Rand:     newRand(settings.Seed),
		Log:      logger,
	})
	return g.Run()
}
