package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/timeline/internal/timeline"
	"github.com/Iron-Ham/timeline/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Long: `List events in timeline order.

Use --category to show a single category; the match is exact and case
sensitive. A category with no events prints nothing.

Examples:
  timeline list
  timeline list --category Military
  timeline list -d events.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listCategory string
	listFormat   string
)

// Output formats for list
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listCategory, "category", "", "only show events in this category")
	listCmd.Flags().StringVarP(&listFormat, "format", "o", formatTable, "output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	switch listFormat {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, yaml)", listFormat)
	}

	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()
	sess := env.sess

	if listCategory != "" {
		sess.SetFilter(timeline.Filter(listCategory))
	}
	events := sess.Visible()

	out := cmd.OutOrStdout()
	switch listFormat {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Fprintf(out, "No events in %q.\n", sess.Filter().String())
		return nil
	}
	return writeEventTable(out, events, terminalWidth(out))
}

// writeEventTable prints one aligned row per event. Titles are truncated to
// fit width when it is known.
func writeEventTable(out io.Writer, events []timeline.Event, width int) error {
	const yearWidth, categoryWidth = 6, 16

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tCATEGORY\tTITLE")
	for _, e := range events {
		title := e.Title
		if width > 0 {
			title = util.Truncate(title, max(width-yearWidth-categoryWidth-4, 10))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Year, e.Category, title)
	}
	return w.Flush()
}
