package cli

import (
	"github.com/spf13/cobra"

	"github.com/activestate/bomgen/pkg/pipeline"
)

// generateCommand creates the root command, which writes the BOM.
func (c *CLI) generateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   appName + " <project_name> [m2_root_path]",
		Short: "Generate a Maven BOM from a local artifact repository",
		Long: `Scan a local Maven repository for .pom files, keep the highest version of
every groupId:artifactId, and write them as a Bill of Materials.

The repository root is m2_root_path when given, otherwise the "m2" directory
next to $JAVA_HOME. Parent POMs (packaging "pom") and plugins (packaging
"plugin") are left out. The BOM is written to

  <root>/com/activestate/platform/project/<project_name>-bom/1.0.0/<project_name>-bom-1.0.0.pom

replacing any previous file.`,
		Example: `  # Use the m2 directory next to $JAVA_HOME
  bomgen myproject

  # Explicit repository root
  bomgen myproject ~/.m2/repository

  # Print the BOM instead of writing it
  bomgen myproject ~/.m2/repository --dry-run`,
		Args:         requireProjectName,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], rootArg(args, 1), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the BOM to stdout instead of writing it")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, projectName, explicitRoot string, dryRun bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	opts := pipeline.Options{
		ProjectName: projectName,
		Root:        explicitRoot,
		JavaHome:    c.Getenv(javaHomeEnv),
		DryRun:      dryRun,
		Output:      out,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	root, err := runner.Locate(opts)
	if err != nil {
		return err
	}
	opts.Root = root
	if !dryRun {
		printKeyValue(out, "Repository", root)
	}

	prog := newProgress(logger, root)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(result.Project)

	if dryRun {
		return nil
	}

	printSuccess(out, "Wrote %s", result.Project.ArtifactID)
	printFile(out, result.Path)
	printStats(out,
		statCount{result.Stats.POMs, "poms"},
		statCount{result.Stats.Dependencies, "dependencies"},
		statCount{result.Stats.Skipped, "skipped"},
	)
	if result.Stats.Invalid > 0 {
		printWarning(out, "%d .pom files outside the group/artifact/version layout were ignored", result.Stats.Invalid)
	}
	return nil
}
