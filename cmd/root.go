// Package cmd holds the docsite command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/logging"
	"github.com/testingcanx/docsite/internal/site"
)

// app is the state shared by the subcommands once the configuration is
// loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// flagKeys maps command line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"dev":  "log.development",
	"addr": "addr",
	"out":  "outputDir",
	"base": "baseURL",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "docsite",
		Short: "The testingcanx documentation site",
		Long: `docsite serves the testingcanx component library documentation,
exports it as static files and prints its routes and sitemap.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("dev", false, "development logging")
	rootCmd.PersistentFlags().String("base", "", "base URL used in the sitemap")

	rootCmd.AddCommand(
		newServeCmd(a),
		newBuildCmd(a),
		newRoutesCmd(a),
		newSitemapCmd(a),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}
	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("file", used))
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

func (a *app) site() (*site.Site, error) {
	s, err := site.New(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to mount pages: %w", err)
	}
	return s, nil
}
