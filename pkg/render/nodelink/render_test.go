package nodelink

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/icons"
	"github.com/macro-ai/archdiagrams/pkg/render"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// requireConverter skips tests that produce raster output when rsvg-convert
// is not installed.
func requireConverter(t *testing.T) {
	t.Helper()
	if _, err := render.LookupConverter(); err != nil {
		t.Skip("rsvg-convert not installed")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{"SVG", FormatSVG, false},
		{"jpeg", FormatJPG, false},
		{"dot", FormatDOT, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) returned wrong error code: %v", tt.in, err)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRender_SVG(t *testing.T) {
	svg, err := Render(context.Background(), `digraph G { a -> b; }`, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render() output missing <svg> tag")
	}
}

func TestRender_PNG(t *testing.T) {
	requireConverter(t)
	data, err := Render(context.Background(), ToDOT(sampleDiagram(), Options{}), FormatPNG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Render() output is not a PNG")
	}
}

// TestRender_PNGDrawsEdges checks that edge strokes reach the raster image:
// a dashed blue edge between two stacked nodes must cover most of the gap
// between them, not just the arrowhead.
func TestRender_PNGDrawsEdges(t *testing.T) {
	requireConverter(t)

	d := diagram.New("Edges", diagram.TopToBottom)
	src := d.Node(icons.AWSS3, "Source")
	dst := d.Node(icons.AWSS3, "Replica")
	d.Connect(src, dst, diagram.Attrs{Color: "blue", Style: diagram.Dashed})

	data, err := Render(context.Background(), ToDOT(d, Options{}), FormatPNG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top, bottom, rows := -1, -1, 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		found := false
		for x := b.Min.X; x < b.Max.X && !found; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			found = a > 0x8000 && r < 0x5000 && g < 0x5000 && bl > 0xaa00
		}
		if !found {
			continue
		}
		if top < 0 {
			top = y
		}
		bottom = y
		rows++
	}

	if top < 0 {
		t.Fatal("no edge pixels in PNG")
	}
	if span := bottom - top; span < 30 {
		t.Errorf("edge spans %dpx vertically, want >= 30", span)
	}
	if rows < 20 {
		t.Errorf("edge covers %d rows, want >= 20", rows)
	}
}

func TestRender_JPG(t *testing.T) {
	requireConverter(t)
	data, err := Render(context.Background(), `digraph G { a -> b; }`, FormatJPG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("Render() output is not a JPEG")
	}
}

func TestRender_MissingConverter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	for _, f := range []Format{FormatPNG, FormatJPG, FormatPDF} {
		_, err := Render(context.Background(), `digraph G { a -> b; }`, f)
		if !errors.Is(err, errors.ErrCodeRenderFailed) {
			t.Errorf("Render(%s) error = %v, want RENDER_FAILED", f, err)
		}
	}
}

func TestRender_DOTPassthrough(t *testing.T) {
	dot := `digraph G { a -> b; }`
	out, err := Render(context.Background(), dot, FormatDOT)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != dot {
		t.Errorf("Render() = %q, want input unchanged", out)
	}
}

func TestRender_InvalidDOT(t *testing.T) {
	_, err := Render(context.Background(), `not valid DOT {{{`, FormatSVG)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("Render() error = %v, want RENDER_FAILED", err)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(context.Background(), `digraph G {}`, Format("gif"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render() error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderer_RenderFile(t *testing.T) {
	requireConverter(t)
	dir := t.TempDir()
	d := sampleDiagram()
	r := NewRenderer("", Options{})
	if r.Ext() != "png" {
		t.Fatalf("Ext() = %q, want png", r.Ext())
	}

	path := filepath.Join(dir, d.Filename(r.Ext()))
	if err := r.RenderFile(context.Background(), d, path); err != nil {
		t.Fatalf("RenderFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("RenderFile() did not write a PNG")
	}
}

func TestRenderer_RenderFile_InvalidDiagram(t *testing.T) {
	dir := t.TempDir()
	d := diagram.New("Broken", diagram.TopToBottom)
	d.Node("aws.compute.Mainframe", "Legacy")

	path := filepath.Join(dir, d.Filename("png"))
	err := NewRenderer(FormatPNG, Options{}).RenderFile(context.Background(), d, path)
	if !errors.Is(err, errors.ErrCodeUnknownKind) {
		t.Fatalf("RenderFile() error = %v, want UNKNOWN_KIND", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("RenderFile() wrote a file for an invalid diagram")
	}
}

func TestRenderer_RenderFile_WriteError(t *testing.T) {
	d := diagram.New("Write", diagram.TopToBottom)
	d.Node(icons.AWSS3, "S3")

	path := filepath.Join(t.TempDir(), "missing", "write.dot")
	err := NewRenderer(FormatDOT, Options{}).RenderFile(context.Background(), d, path)
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("RenderFile() error = %v, want WRITE_FAILED", err)
	}
}
