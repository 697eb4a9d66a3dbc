// Package nodelink renders architecture diagrams as node-link images.
//
// # Overview
//
// Layout is delegated to Graphviz, embedded in-process through
// [github.com/goccy/go-graphviz]. This package translates a
// [diagram.Diagram] into DOT source, has Graphviz lay it out as SVG and
// converts that SVG to the requested image format:
//
//	Diagram → ToDOT() → DOT → Render() → SVG → PNG / JPG / PDF bytes
//
// # Usage
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	png, err := nodelink.Render(ctx, dot, nodelink.FormatPNG)
//
// Or, to write the file next to the current working directory the way the
// scene generator does:
//
//	r := nodelink.NewRenderer(nodelink.FormatPNG, nodelink.Options{})
//	err := r.RenderFile(ctx, d, d.Filename(r.Ext()))
//
// # Styling
//
// Graph, node and edge defaults follow the conventional "diagrams as code"
// look: orthogonal splines, generous padding, rounded clusters whose
// background colour cycles with nesting depth. Node shape and colours come
// from the node's icons.Kind. Edge labels are emitted as xlabels because
// orthogonal routing cannot place regular edge labels.
//
// # Formats
//
// SVG comes straight from Graphviz. PNG, JPG and PDF are converted from the
// SVG by the render package with rsvg-convert, because the raster output of
// the embedded Graphviz drops edge strokes. The "dot" format skips rendering
// and returns the DOT source, which is handy for debugging or for
// processing with external Graphviz tools.
package nodelink
