package cmd

import "github.com/spf13/cobra"

func newSitemapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Prints sitemap.xml",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.site()
			if err != nil {
				return err
			}
			return s.Sitemap.WriteXML(cmd.OutOrStdout())
		},
	}
}
