// Package cmd implements the timeline command line.
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/timeline/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Browse a timeline of historical events",
	Long: `Timeline shows a horizontal sequence of historical events in the terminal.

Events can be filtered by category and opened for details. Without a data
file the built-in World War II timeline (1939-1945) is shown.

Running timeline with no subcommand launches the interactive viewer.`,
	RunE:          runView,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/timeline/config.yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "event data file or directory (default: built-in dataset)")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("data.path", rootCmd.PersistentFlags().Lookup("data"))

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TIMELINE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TIMELINE_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
