// Package render converts Graphviz SVG output into raster images.
//
// Graphviz's own raster backends draw node fills and text but not edge
// strokes in the embedded build, so PNG and JPG are produced from SVG with
// rsvg-convert instead. Requires librsvg: brew install librsvg (macOS),
// apt install librsvg2-bin (Linux).
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"os/exec"

	"github.com/disintegration/imaging"

	"github.com/macro-ai/archdiagrams/pkg/errors"
)

// Converter is the external program used for SVG conversion.
const Converter = "rsvg-convert"

// LookupConverter returns the path of rsvg-convert, or a RENDER_FAILED
// error with install instructions when it is not on PATH.
func LookupConverter() (string, error) {
	path, err := exec.LookPath(Converter)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRenderFailed, err,
			"raster export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}
	return path, nil
}

// ToPNG converts SVG bytes to PNG with the given scale factor.
// A scale of 2.0 produces a 2x resolution image.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// ToPDF converts SVG bytes to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToJPG converts SVG bytes to JPEG. JPEG has no alpha channel, so the image
// is flattened onto white first.
func ToJPG(ctx context.Context, svg []byte, scale float64, quality int) ([]byte, error) {
	png, err := ToPNG(ctx, svg, scale)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "decode png")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flatten(img), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode jpg")
	}
	return buf.Bytes(), nil
}

// flatten composites img over an opaque white background.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	path, err := LookupConverter()
	if err != nil {
		return nil, err
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "%s: %s", Converter, errBuf.String())
	}
	if out.Len() == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "%s: empty %s output", Converter, format)
	}
	return out.Bytes(), nil
}
