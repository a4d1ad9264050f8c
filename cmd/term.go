package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the particle backdrop in the terminal",
	Long: `Draws the particle backdrop in the terminal at the configured frame
rate, one particle per cell. Esc, Ctrl+C or q quits.`,
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	screen, err := term.Open()
	if err != nil {
		// No surface to draw on: nothing to animate.
		logger.Debug("terminal unavailable", zap.Error(err))
		return nil
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return term.New(screen, settings, newRand(settings.Seed), logger).Run(ctx)
}
