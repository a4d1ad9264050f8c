package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/gallery"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

var checkImages bool

var galleriesCmd = &cobra.Command{
	Use:   "galleries",
	Short: "List the project galleries in the site manifest",
	RunE:  listGalleries,
}

func init() {
	rootCmd.AddCommand(galleriesCmd)
	galleriesCmd.Flags().BoolVar(&checkImages, "check", false, "decode every image and report failures")
}

func listGalleries(cmd *cobra.Command, args []string) error {
	m, err := site.Load(settings.SitePath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	catalog := gallery.Catalog(m.Galleries)
	if len(catalog) == 0 {
		fmt.Fprintln(out, "No galleries")
		return nil
	}
	for _, name := range catalog.Names() {
		fmt.Fprintf(out, "%s (%d images)\n", name, len(catalog[name]))
		for _, p := range catalog[name] {
			fmt.Fprintln(out, "  ", p)
		}
	}

	if !checkImages {
		return nil
	}
	decoded, err := preload(cmd.Context(), m)
	if err != nil {
		return err
	}
	if len(decoded.Failed) == 0 {
		fmt.Fprintf(out, "All %d images decode\n", len(decoded.Images))
		return nil
	}
	for p, ferr := range decoded.Failed {
		fmt.Fprintf(out, "FAIL %s: %v\n", p, ferr)
	}
	return fmt.Errorf("%d of %d images failed to decode", len(decoded.Failed), len(decoded.Failed)+len(decoded.Images))
}
