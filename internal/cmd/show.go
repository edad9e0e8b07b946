package cmd

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/timeline/internal/imagecheck"
	"github.com/Iron-Ham/timeline/internal/markdown"
	"github.com/Iron-Ham/timeline/internal/tui/styles"
)

var showCmd = &cobra.Command{
	Use:   "show <year>",
	Short: "Show one event in detail",
	Long: `Show the title, category, image and description of the event for a year.
The description is rendered as markdown.

Example:
  timeline show 1944`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showPlain bool

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showPlain, "plain", false, "disable colors")
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()
	sess := env.sess

	if err := sess.SelectYear(args[0]); err != nil {
		return err
	}
	e, _ := sess.Current()

	out := cmd.OutOrStdout()
	width := terminalWidth(out)
	if width <= 0 {
		width = 80
	}

	profile := termenv.NewOutput(out).EnvColorProfile()
	if showPlain {
		profile = termenv.Ascii
	}
	p := styles.GetPalette(sess.Theme().Mode())
	r := markdown.New(markdown.Options{
		Width:   width,
		Profile: profile,
		Output:  out,
		Palette: markdown.Palette{
			Text:    p.Text,
			Heading: p.Primary,
			Faint:   p.Muted,
			Accent:  p.Accent,
		},
	})

	fmt.Fprintf(out, "%s  %s\n", e.Year, e.Title)
	fmt.Fprintf(out, "Category: %s\n", e.Category)
	fmt.Fprintf(out, "Image:    %s\n", imagecheck.Resolve(e.ImageURL, env.cfg.Images.PlaceholderURL))
	if body := r.Render(e.Description); body != "" {
		fmt.Fprintf(out, "\n%s\n", body)
	}
	return nil
}
