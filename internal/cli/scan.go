package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/activestate/bomgen/pkg/pipeline"
)

// scanCommand creates the scan command, which shows what a BOM would contain.
func (c *CLI) scanCommand() *cobra.Command {
	var purl bool

	cmd := &cobra.Command{
		Use:   "scan [m2_root_path]",
		Short: "List the coordinates a BOM would pin, without writing anything",
		Example: `  bomgen scan ~/.m2/repository
  bomgen scan --purl > purls.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd, rootArg(args, 0), purl)
		},
	}

	cmd.Flags().BoolVar(&purl, "purl", false, "print package URLs (pkg:maven/...) one per line")

	return cmd
}

func (c *CLI) runScan(cmd *cobra.Command, explicitRoot string, purl bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	root, err := runner.Locate(pipeline.Options{Root: explicitRoot, JavaHome: c.Getenv(javaHomeEnv)})
	if err != nil {
		return err
	}

	sel, stats, err := runner.Select(ctx, root)
	if err != nil {
		return err
	}
	entries := sel.Entries()

	if purl {
		for _, e := range entries {
			fmt.Fprintln(out, e.PURL())
		}
		return nil
	}

	printKeyValue(out, "Repository", root)
	if len(entries) == 0 {
		printInfo(out, "No artifacts selected")
		return nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key())+2)
	}
	fmt.Fprintln(out, StyleTitle.Render("Selected artifacts"))
	for _, e := range entries {
		printCoordinate(out, e.Key(), e.Version, width)
	}
	printStats(out,
		statCount{stats.POMs, "poms"},
		statCount{len(entries), "artifacts"},
		statCount{stats.Skipped, "skipped"},
		statCount{stats.Invalid, "invalid paths"},
	)
	return nil
}
