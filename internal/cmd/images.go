package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/timeline/internal/imagecheck"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Check that event images are reachable",
	Long: `Probe every event's image URL and report the ones the viewer would replace
with the placeholder image.

Missing and malformed URLs are reported without a request. The rest are
probed concurrently (images.probe_concurrency) with a per-request timeout
(images.probe_timeout_ms).`,
	Args: cobra.NoArgs,
	RunE: runImages,
}

var imagesFail bool

func init() {
	rootCmd.AddCommand(imagesCmd)

	imagesCmd.Flags().BoolVar(&imagesFail, "fail", false, "exit with an error if any image is broken")
}

func runImages(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	checker := imagecheck.NewChecker(imagecheck.Options{
		Timeout:     env.cfg.Images.ProbeTimeout(),
		Concurrency: env.cfg.Images.ProbeConcurrency,
		Logger:      env.logger,
	})
	results := checker.Check(cmd.Context(), env.sess.All())

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tSTATUS\tURL")

	broken := 0
	for _, r := range results {
		status := r.Status.String()
		if r.Code != 0 {
			status = fmt.Sprintf("%s (%d)", status, r.Code)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Year, status, r.URL)
		if r.Broken() {
			broken++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d of %d images will show the placeholder\n", broken, len(results))
	if broken > 0 {
		fmt.Fprintf(out, "Placeholder: %s\n", env.cfg.Images.PlaceholderURL)
		if imagesFail {
			return fmt.Errorf("%d broken image(s)", broken)
		}
	}
	return nil
}
