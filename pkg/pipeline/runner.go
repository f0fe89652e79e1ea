package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/activestate/bomgen/pkg/bom"
	"github.com/activestate/bomgen/pkg/config"
	"github.com/activestate/bomgen/pkg/m2"
	"github.com/activestate/bomgen/pkg/observability"
	"github.com/activestate/bomgen/pkg/pom"
)

// Runner executes BOM runs with a fixed configuration.
// It keeps no state between runs.
type Runner struct {
	Config config.Config
	Logger *log.Logger

	parser *pom.Parser
}

// NewRunner creates a runner. A nil logger means log.Default().
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	entities := make([]pom.Entity, len(cfg.Entities))
	for i, e := range cfg.Entities {
		entities[i] = pom.Entity{Name: e.Name, Value: e.Value}
	}
	return &Runner{
		Config: cfg,
		Logger: logger,
		parser: pom.NewParser(entities),
	}
}

// Execute runs every stage and writes the BOM.
//
// The project name is validated and the root resolved before any file is
// touched. Any parse or filesystem error aborts the run; nothing is written
// unless every POM was read successfully.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root, err := r.Locate(opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Root: root}

	// Stage 1: scan, parse, reduce
	sel, stats, err := r.Select(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Stats = stats

	// Stage 2: emit
	emitStart := time.Now()
	project := bom.NewProject(opts.ProjectName, bom.Options{
		GroupID:     r.Config.GroupID,
		Version:     r.Config.Version,
		Description: r.Config.Description,
	}, sel.Entries())
	result.Project = project
	result.Stats.Dependencies = len(project.Dependencies())

	if opts.DryRun {
		err = bom.Write(opts.Output, project)
	} else {
		result.Path, err = bom.WriteFile(root, project)
	}
	result.Stats.EmitTime = time.Since(emitStart)
	observability.Pipeline().OnEmitComplete(ctx, result.Path, result.Stats.Dependencies, result.Stats.EmitTime, err)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}

	r.Logger.Info("wrote bom",
		"artifact", project.GroupID+":"+project.ArtifactID+":"+project.Version,
		"dependencies", result.Stats.Dependencies,
		"duration", result.Stats.EmitTime)

	return result, nil
}

// Locate resolves and checks the repository root for opts.
func (r *Runner) Locate(opts Options) (string, error) {
	root, err := m2.Locate(opts.Root, opts.JavaHome)
	if err != nil {
		return "", err
	}
	if err := m2.CheckRoot(root); err != nil {
		return "", err
	}
	r.Logger.Debug("resolved repository root", "root", root)
	return root, nil
}

// Select scans root, reads every POM's packaging and reduces the results to
// one version per artifact. Files are processed in sorted path order.
func (r *Runner) Select(ctx context.Context, root string) (sel *bom.Selection, stats Stats, err error) {
	start := time.Now()
	observability.Pipeline().OnScanStart(ctx, root)
	defer func() {
		stats.ScanTime = time.Since(start)
		observability.Pipeline().OnScanComplete(ctx, root, stats.POMs, stats.Skipped+stats.Invalid, stats.ScanTime, err)
	}()

	paths, err := m2.Collect(root)
	if err != nil {
		return nil, stats, err
	}
	r.Logger.Debug("found poms", "count", len(paths))

	sel = bom.NewSelection(r.Config.SkipPackaging)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		c, err := m2.ParsePath(root, path)
		if err != nil {
			r.Logger.Warn("skipping pom outside group/artifact/version layout", "path", path)
			stats.Invalid++
			continue
		}

		doc, err := r.parser.ReadFile(path)
		if err != nil {
			return nil, stats, err
		}
		stats.POMs++
		c.Packaging = doc.Packaging()
		if !doc.HasPackaging() {
			r.Logger.Debug("no packaging element, assuming "+pom.DefaultPackaging, "coordinate", c.String())
		}

		if sel.Skips(c.Packaging) {
			r.Logger.Debug("skipping", "coordinate", c.String(), "packaging", c.Packaging)
			stats.Skipped++
			continue
		}
		if sel.Add(c) {
			r.Logger.Debug("selected", "coordinate", c.String())
		} else if kept, ok := sel.Version(c.Key()); ok {
			r.Logger.Debug("keeping greater version", "artifact", c.Key(), "version", kept, "ignored", c.Version)
		}
	}

	r.Logger.Info("scanned repository",
		"poms", stats.POMs,
		"artifacts", sel.Len(),
		"skipped", stats.Skipped,
		"duration", time.Since(start))

	return sel, stats, nil
}
