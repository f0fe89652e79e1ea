// Package pipeline runs the complete locate → scan → parse → reduce → emit
// sequence that turns a local Maven repository into a BOM.
//
// # Usage
//
//	runner := pipeline.NewRunner(config.Default(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ProjectName: "myproj",
//	    JavaHome:    os.Getenv("JAVA_HOME"),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Path)
//
// The stages can also be run on their own: [Runner.Select] stops after the
// reduction and returns the selected coordinates without writing anything.
package pipeline

import (
	"io"
	"time"

	"github.com/activestate/bomgen/pkg/bom"
	"github.com/activestate/bomgen/pkg/errors"
)

// Options describe one BOM run.
type Options struct {
	// ProjectName names the BOM: artifactId "<ProjectName>-bom". Required.
	ProjectName string

	// Root is an explicit repository root. When empty the root is derived
	// from JavaHome.
	Root string

	// JavaHome is the JDK directory whose sibling "m2" is the repository.
	JavaHome string

	// DryRun writes the BOM to Output instead of the repository.
	DryRun bool
	Output io.Writer
}

// Validate checks the options that can be checked without touching disk.
func (o Options) Validate() error {
	if err := errors.ValidateProjectName(o.ProjectName); err != nil {
		return err
	}
	if o.DryRun && o.Output == nil {
		return errors.New(errors.ErrCodeInternal, "dry run requires an output writer")
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the resolved repository root.
	Root string

	// Path is the file written, empty on dry runs.
	Path string

	// Project is the generated BOM.
	Project *bom.Project

	// Stats contains counts and timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	POMs         int // .pom files found and parsed
	Skipped      int // dropped because of their packaging
	Invalid      int // dropped because their path is not group/artifact/version/file
	Dependencies int // entries in the BOM
	ScanTime     time.Duration
	EmitTime     time.Duration
}
