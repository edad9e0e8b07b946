package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/timeline/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive timeline",
	Long: `Open the interactive timeline viewer.

Use left/right to move between events, enter to open one, f or tab to
cycle category filters and t to switch between light and dark mode.
Press ? inside the viewer for all keys.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Bool("watch", false, "reload when the data file changes")
	viewCmd.Flags().String("theme", "", "starting theme (light or dark)")
}

func runView(cmd *cobra.Command, args []string) error {
	// Flags only exist on the view command; the root command runs with
	// whatever the config says
	if cmd.Flags().Changed("watch") {
		watch, _ := cmd.Flags().GetBool("watch")
		viper.Set("data.watch", watch)
	}
	if cmd.Flags().Changed("theme") {
		theme, _ := cmd.Flags().GetString("theme")
		viper.Set("tui.theme", theme)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	sess, l, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()
	logger.Info("starting viewer", "source", l.Source(), "session_id", sess.ID())

	opts := tui.OptionsFromConfig(cfg)
	opts.Logger = logger

	app := tui.New(sess, l, opts)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
