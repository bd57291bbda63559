package cmd

import (
	"github.com/spf13/cobra"

	"github.com/testingcanx/docsite/internal/export"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Exports the site as static files",
		Long: `The build command renders every page, sitemap.xml and robots.txt into
the configured output directory (default './public/'). The directory is
cleared first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.site()
			if err != nil {
				return err
			}
			_, err = export.Export(s.Handler, s.Pages.Routes(), a.cfg.OutputDir, a.logger)
			return err
		},
	}
	cmd.Flags().String("out", "", "output directory (default public)")
	return cmd
}
