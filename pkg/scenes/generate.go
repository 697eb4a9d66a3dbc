package scenes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/observability"
)

// Renderer draws a diagram to a file. nodelink.Renderer implements it.
type Renderer interface {
	RenderFile(ctx context.Context, d *diagram.Diagram, path string) error
	Ext() string
}

// Result is the outcome of generating one scene: success, or failure with
// the error that caused it.
type Result struct {
	Key   string
	Name  string
	Title string // empty if the builder failed before producing a diagram
	File  string // file name relative to the output directory; empty on failure
	Err   error
}

// OK reports whether the scene was generated.
func (r Result) OK() bool { return r.Err == nil }

// Reporter is told about each scene as soon as it finishes.
type Reporter interface {
	Generated(r Result)
	Failed(r Result)
}

// TextReporter writes plain one-line progress messages.
type TextReporter struct {
	W io.Writer
}

// Generated implements Reporter.
func (t TextReporter) Generated(r Result) {
	fmt.Fprintf(t.W, "Generated: %s\n", r.Title)
}

// Failed implements Reporter.
func (t TextReporter) Failed(r Result) {
	fmt.Fprintf(t.W, "Failed to generate %s: %s\n", r.Name, errors.UserMessage(r.Err))
}

type nopReporter struct{}

func (nopReporter) Generated(Result) {}
func (nopReporter) Failed(Result)    {}

// Generator renders scenes into the current working directory.
// A Generator belongs to one run: it remembers which files the run wrote so
// two scenes whose titles map to the same file cannot overwrite each other.
type Generator struct {
	renderer Renderer
	reporter Reporter
	logger   *log.Logger
	written  map[string]string // file -> scene key
}

// NewGenerator creates a generator. A nil reporter discards progress and a
// nil logger uses log.Default().
func NewGenerator(r Renderer, rep Reporter, logger *log.Logger) *Generator {
	if rep == nil {
		rep = nopReporter{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		renderer: r,
		reporter: rep,
		logger:   logger,
		written:  make(map[string]string),
	}
}

// Generate builds and renders s. It never returns an error and never
// panics; failures are carried by the returned Result and reported.
func (g *Generator) Generate(ctx context.Context, s Scene) (res Result) {
	res = Result{Key: s.Key, Name: s.Name}
	hooks := observability.Scenes()
	hooks.OnSceneStart(ctx, s.Key)
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.File = ""
			res.Err = errors.New(errors.ErrCodeBuilderPanic, "panic: %v", p)
		}
		hooks.OnSceneComplete(ctx, s.Key, res.File, time.Since(start), res.Err)
		if res.OK() {
			g.logger.Debug("scene generated", "scene", s.Key, "file", res.File, "duration", time.Since(start).Round(time.Millisecond))
			g.reporter.Generated(res)
			return
		}
		g.logger.Debug("scene failed", "scene", s.Key, "err", res.Err)
		g.reporter.Failed(res)
	}()

	res.File, res.Title, res.Err = g.generate(ctx, s)
	if res.Err != nil {
		res.File = ""
	}
	return res
}

func (g *Generator) generate(ctx context.Context, s Scene) (file, title string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	d, err := s.Build()
	if err != nil {
		if d != nil {
			title = d.Title
		}
		return "", title, err
	}

	file = d.Filename(g.renderer.Ext())
	if err := errors.ValidateFilename(file); err != nil {
		return "", d.Title, err
	}
	if owner, taken := g.written[file]; taken && owner != s.Key {
		return "", d.Title, errors.New(errors.ErrCodeWriteFailed, "%s was already written by scene %q in this run", file, owner)
	}

	if err := g.renderer.RenderFile(ctx, d, file); err != nil {
		return "", d.Title, err
	}
	g.written[file] = s.Key
	return file, d.Title, nil
}
