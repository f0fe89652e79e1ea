package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/activestate/bomgen/pkg/bom"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one BOM run against a repository root.
type progress struct {
	logger *log.Logger
	root   string
	start  time.Time
}

// newProgress starts timing a run over root.
func newProgress(l *log.Logger, root string) *progress {
	return &progress{logger: l, root: root, start: time.Now()}
}

// done logs the finished BOM with its size and the elapsed time, rounded to
// the millisecond:
//
//	14:32:01.45 INFO generated bom artifact=com.activestate.platform.project:myproj-bom:1.0.0 dependencies=42 root=/opt/m2 elapsed=1.234s
func (p *progress) done(project *bom.Project) {
	p.logger.Info("generated bom",
		"artifact", project.GroupID+":"+project.ArtifactID+":"+project.Version,
		"dependencies", len(project.Dependencies()),
		"root", p.root,
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
