package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/observability"
	"github.com/macro-ai/archdiagrams/pkg/scenes"
)

// Runner executes generation runs.
//
// Run changes the process working directory for its duration, so a Runner
// must not be used from several goroutines at once.
type Runner struct {
	Reporter scenes.Reporter
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil reporter discards per-scene progress
// and a nil logger uses log.Default().
func NewRunner(reporter scenes.Reporter, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Reporter: reporter, Logger: logger}
}

// Run generates opts.Scenes into opts.OutputDir.
//
// The returned error is non-nil only if the options are invalid or the
// output directory cannot be created or entered; scene failures are in the
// report. The previous working directory is restored before Run returns.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	logger := r.Logger.With("run", report.RunID[:8])

	dir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputDir, err, "resolve %s", opts.OutputDir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputDir, err, "create %s", dir)
	}
	report.Dir = dir

	restore, err := chdir(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Warn("could not restore working directory", "err", err)
		}
	}()

	hooks := observability.Scenes()
	hooks.OnRunStart(ctx, report.RunID, len(opts.Scenes))
	logger.Debug("generating diagrams", "dir", dir, "scenes", len(opts.Scenes), "format", opts.Renderer.Ext())

	gen := scenes.NewGenerator(opts.Renderer, r.Reporter, logger)
	for _, s := range opts.Scenes {
		report.Results = append(report.Results, gen.Generate(ctx, s))
	}

	report.Files, err = listFiles(dir, opts.Renderer.Ext())
	if err != nil {
		logger.Warn("could not list output files", "dir", dir, "err", err)
	}
	report.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, report.RunID, report.Succeeded(), report.Total(), report.Duration)

	return report, nil
}

// chdir switches the working directory and returns a func restoring it.
func chdir(dir string) (func() error, error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputDir, err, "get working directory")
	}
	if err := os.Chdir(dir); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputDir, err, "enter %s", dir)
	}
	return func() error { return os.Chdir(prev) }, nil
}

// listFiles returns the base names of the regular files in dir with the
// given extension, sorted.
func listFiles(dir, ext string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names, nil
}
