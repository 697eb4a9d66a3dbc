package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/observability"
	"github.com/macro-ai/archdiagrams/pkg/render"
)

// Format is an output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
)

const (
	rasterScale = 1.0
	jpegQuality = 90
)

// ParseFormat parses a format name. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatPNG, nil
	case "jpeg":
		return FormatJPG, nil
	case FormatPNG, FormatSVG, FormatJPG, FormatPDF, FormatDOT:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'jpg', 'pdf', or 'dot')", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Render renders DOT source in the given format.
// For [FormatDOT] the source is returned unchanged. Graphviz always lays
// out to SVG; PNG, JPG and PDF are converted from that SVG.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG, FormatPNG, FormatJPG, FormatPDF:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(format), len(dot))
	start := time.Now()

	out, err := renderAs(ctx, dot, format)
	hooks.OnRenderComplete(ctx, string(format), len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func renderAs(ctx context.Context, dot string, format Format) ([]byte, error) {
	svg, err := renderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	svg = normalizeViewBox(svg)

	switch format {
	case FormatPNG:
		return render.ToPNG(ctx, svg, rasterScale)
	case FormatJPG:
		return render.ToJPG(ctx, svg, rasterScale, jpegQuality)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}

func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render svg")
	}
	if buf.Len() == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "render svg: empty output")
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so the image scales from a
// 0,0 origin with explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Renderer validates a diagram, renders it and writes the result to disk.
type Renderer struct {
	Format  Format
	Options Options
}

// NewRenderer creates a renderer. An empty format means PNG.
func NewRenderer(format Format, opts Options) Renderer {
	if format == "" {
		format = FormatPNG
	}
	return Renderer{Format: format, Options: opts}
}

// Ext returns the extension of the files this renderer writes.
func (r Renderer) Ext() string { return r.Format.Ext() }

// RenderBytes validates d and renders it in memory.
func (r Renderer) RenderBytes(ctx context.Context, d *diagram.Diagram) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return Render(ctx, ToDOT(d, r.Options), r.Format)
}

// RenderFile validates d, renders it and writes it to path, replacing any
// existing file. Nothing is written when validation or rendering fails.
func (r Renderer) RenderFile(ctx context.Context, d *diagram.Diagram, path string) error {
	data, err := r.RenderBytes(ctx, d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
