// tipplace is a terminal playground for the tooltip placement engine.
//
// Run: go run ./cmd/tipplace/
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/wesen/tipplace/internal/config"
	"github.com/wesen/tipplace/internal/logging"
	"github.com/wesen/tipplace/internal/tipui"
	"go.uber.org/zap"
)

var (
	configPath string
	logFile    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tipplace",
	Short: "Tooltip placement playground",
	Long: `tipplace shows a tooltip next to trigger buttons in the terminal and
picks one of eight orientations so the tooltip stays on screen.

Run without arguments to start the interactive host.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runHost,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive host",
	Args:  cobra.NoArgs,
	RunE:  runHost,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(runCmd, placeCmd, renderCmd, initConfigCmd)
}

// loadConfig reads --config when given, otherwise the defaults, then
// applies flag overrides.
func loadConfig() (*config.Config, error) {
	var c *config.Config
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return nil, err
		}
	} else {
		c = config.Default()
		c.ApplyEnv()
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	if logFile != "" {
		c.Logging.File = logFile
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	return c, nil
}

func runHost(cmd *cobra.Command, args []string) error {
	logger.Info("starting host", zap.Int("triggers", len(cfg.Triggers)+len(cfg.Toolbar)))
	p := tea.NewProgram(tipui.NewModel(cfg, logger))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run host: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
