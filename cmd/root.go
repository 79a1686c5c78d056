package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/config"
	"github.com/VoxDroid/asciiref/internal/logger"
)

var (
	cfgPath  string
	logLevel string
	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "asciiref",
	Short: "asciiref is a searchable ASCII reference table",
	Long: "asciiref shows the 128 ASCII characters with their decimal, hex, octal and binary codes\n" +
		"and ranks them against a free-text query. Prefix a query with 0x, 0o or 0b to search one base.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "asciiref: run 'asciiref --help' to see available commands")
	},
}

// skipConfigLoad marks commands that manage the config file itself and must
// run even when it is missing or broken.
const skipConfigLoad = "asciiref/skip-config-load"

// loadConfig resolves the config file and applies the log level, letting
// --log-level win over the file.
func loadConfig(cmd *cobra.Command) error {
	path := ""
	if cmd.Annotations[skipConfigLoad] != "" {
		cfg = config.Default()
	} else {
		loaded, p, err := config.LoadWithPriority(cfgPath)
		if err != nil {
			return err
		}
		cfg, path = loaded, p
	}
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if err := logger.SetLevel(level); err != nil {
		return err
	}
	if path != "" {
		log.Debug("loaded config", "path", path)
	}
	return nil
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	log.SetDefault(logger.New("asciiref"))
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a config.toml (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.SilenceErrors = true
}
