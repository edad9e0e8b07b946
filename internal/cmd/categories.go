package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/timeline/internal/timeline"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List event categories",
	Long: `List the distinct event categories in the order they first appear.
These are the choices offered by the viewer's filter panel after "All".`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

var categoriesCounts bool

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().BoolVar(&categoriesCounts, "counts", false, "show the number of events in each category")
}

func runCategories(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()
	sess := env.sess

	out := cmd.OutOrStdout()
	if !categoriesCounts {
		for _, c := range sess.Categories() {
			fmt.Fprintln(out, c)
		}
		return nil
	}

	events := sess.All()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range sess.Categories() {
		fmt.Fprintf(w, "%s\t%d\n", c, len(timeline.Apply(events, timeline.Filter(c))))
	}
	return w.Flush()
}
