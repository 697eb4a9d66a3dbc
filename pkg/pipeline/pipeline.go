// Package pipeline orchestrates a diagram generation run.
//
// A run ensures the output directory exists, switches the process working
// directory into it, generates the selected scenes one after another and
// collects a [Report]. The CLI and tests both drive generation through
// [Runner.Run].
//
// # Usage
//
//	runner := pipeline.NewRunner(reporter, logger)
//	report, err := runner.Run(ctx, pipeline.Options{
//	    OutputDir: "docs/diagrams",
//	    Scenes:    scenes.Default().All(),
//	    Format:    nodelink.FormatPNG,
//	})
//	if err != nil {
//	    // the output directory could not be prepared; nothing was generated
//	}
//	fmt.Printf("%d/%d\n", report.Succeeded(), report.Total())
//
// # Errors
//
// Scene failures never surface as errors from Run; they are recorded in
// the report. Run only fails when the output directory cannot be created
// or entered.
package pipeline

import (
	"time"

	"github.com/macro-ai/archdiagrams/pkg/config"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/render/nodelink"
	"github.com/macro-ai/archdiagrams/pkg/scenes"
)

// Options configures a run.
type Options struct {
	// OutputDir receives the rendered files. Parent directories are created.
	// Defaults to config.DefaultOutputDir.
	OutputDir string

	// Scenes to generate, in order.
	Scenes []scenes.Scene

	// Format of the rendered files. Defaults to PNG.
	Format nodelink.Format

	// Detailed adds node kinds to labels.
	Detailed bool

	// Renderer overrides the Graphviz renderer built from Format and Detailed.
	Renderer scenes.Renderer
}

// ValidateAndSetDefaults fills in defaults and validates the options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.OutputDir == "" {
		o.OutputDir = config.DefaultOutputDir
	}
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = nodelink.FormatPNG
	}
	if _, err := nodelink.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Renderer == nil {
		o.Renderer = nodelink.NewRenderer(o.Format, nodelink.Options{Detailed: o.Detailed})
	}
	return nil
}

// Report is the outcome of a run.
type Report struct {
	RunID    string
	Dir      string          // absolute output directory
	Results  []scenes.Result // one per scene, in run order
	Files    []string        // files with the run's extension found in Dir, sorted
	Duration time.Duration
}

// Total is the number of scenes attempted.
func (r *Report) Total() int { return len(r.Results) }

// Succeeded counts the scenes that were generated.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// OK reports whether every scene was generated.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Failed returns the failed results in run order.
func (r *Report) Failed() []scenes.Result {
	var out []scenes.Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}
