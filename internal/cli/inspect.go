package cli

import (
	"github.com/spf13/cobra"

	"github.com/activestate/bomgen/pkg/bom"
)

// inspectCommand creates the inspect command, which reads a generated BOM back.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "inspect <bom-file>",
		Short:        "Show the coordinates and managed dependencies of a BOM",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			p, err := bom.ReadFile(args[0])
			if err != nil {
				return err
			}

			printKeyValue(out, "Artifact", p.GroupID+":"+p.ArtifactID+":"+p.Version)
			printKeyValue(out, "Packaging", p.Packaging)
			if p.Description != "" {
				printKeyValue(out, "Description", p.Description)
			}

			deps := p.Dependencies()
			if len(deps) == 0 {
				printInfo(out, "No managed dependencies")
				return nil
			}

			width := 0
			for _, d := range deps {
				width = max(width, len(d.GroupID)+len(d.ArtifactID)+3)
			}
			for _, d := range deps {
				printCoordinate(out, d.GroupID+":"+d.ArtifactID, d.Version, width)
			}
			printDetail(out, "%d managed dependencies", len(deps))
			return nil
		},
	}
}
