package cmd

import "github.com/spf13/cobra"

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Prints the mounted pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.site()
			if err != nil {
				return err
			}
			return s.Pages.PrintRoutes(cmd.OutOrStdout())
		},
	}
}
