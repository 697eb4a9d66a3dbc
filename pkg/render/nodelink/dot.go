package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
)

// Options configures DOT generation.
type Options struct {
	// Detailed appends the node kind (e.g. "aws.compute.Fargate") to each
	// node label.
	Detailed bool
}

const (
	fontName     = "Sans-Serif"
	fontColor    = "#2D3436"
	edgeColor    = "#7B8894"
	clusterPen   = "#AEB6BE"
	anchorWidth  = "0.08"
	defaultShape = "box"
)

// clusterColors cycle with cluster depth so nested groups stay distinguishable.
var clusterColors = []string{"#E5F5FD", "#EBF3E7", "#ECE8F6", "#FDF7E3"}

// ToDOT converts a diagram to Graphviz DOT source.
// The diagram should be validated first; ToDOT renders whatever was declared.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", d.Title)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.Direction)
	fmt.Fprintf(&buf, "  pad=\"2.0\";\n  splines=ortho;\n  nodesep=\"0.60\";\n  ranksep=\"0.75\";\n")
	fmt.Fprintf(&buf, "  fontname=%q;\n  fontsize=15;\n  fontcolor=%q;\n", fontName, fontColor)
	fmt.Fprintf(&buf, "  node [shape=%s, style=\"rounded,filled\", fillcolor=white, fontname=%q, fontsize=13, fontcolor=%q, margin=\"0.2,0.1\"];\n",
		defaultShape, fontName, fontColor)
	fmt.Fprintf(&buf, "  edge [color=%q, fontname=%q, fontsize=11];\n", edgeColor, fontName)
	buf.WriteString("\n")

	w := &dotWriter{buf: &buf, opts: opts}
	for _, n := range d.Nodes() {
		w.node(n, 1)
	}
	for _, c := range d.Clusters() {
		w.cluster(c, 1)
	}

	buf.WriteString("\n")
	for _, e := range d.Edges() {
		attrs := fmtEdgeAttrs(e.Attrs)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.ID, e.To.ID)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From.ID, e.To.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf      *bytes.Buffer
	opts     Options
	clusters int
}

func (w *dotWriter) node(n *diagram.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(w.buf, "%s%q [%s];\n", pad, n.ID, strings.Join(fmtNodeAttrs(n, w.opts.Detailed), ", "))
}

func (w *dotWriter) cluster(c *diagram.Cluster, indent int) {
	pad := strings.Repeat("  ", indent)
	w.clusters++
	fmt.Fprintf(w.buf, "%ssubgraph \"cluster_%d\" {\n", pad, w.clusters)
	inner := pad + "  "
	fmt.Fprintf(w.buf, "%slabel=%q;\n", inner, c.Label)
	fmt.Fprintf(w.buf, "%sstyle=rounded;\n%slabeljust=l;\n", inner, inner)
	fmt.Fprintf(w.buf, "%spencolor=%q;\n%sbgcolor=%q;\n", inner, clusterPen, inner, clusterColor(c.Depth()))
	fmt.Fprintf(w.buf, "%sfontname=%q;\n%sfontsize=12;\n", inner, fontName, inner)
	for _, n := range c.Nodes() {
		w.node(n, indent+1)
	}
	for _, sub := range c.Clusters() {
		w.cluster(sub, indent+1)
	}
	fmt.Fprintf(w.buf, "%s}\n", pad)
}

func clusterColor(depth int) string {
	if depth < 1 {
		depth = 1
	}
	return clusterColors[(depth-1)%len(clusterColors)]
}

func fmtLabel(n *diagram.Node, detailed bool) string {
	if !detailed || n.Kind.IsZero() {
		return n.Label
	}
	return n.Label + "\n[" + n.Kind.String() + "]"
}

func fmtNodeAttrs(n *diagram.Node, detailed bool) []string {
	if n.Anchor {
		return []string{`label=""`, "shape=point", "width=" + anchorWidth, fmt.Sprintf("color=%q", edgeColor)}
	}

	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	s := n.Kind.Style
	if s.Shape != "" && s.Shape != defaultShape {
		attrs = append(attrs, "shape="+s.Shape)
	}
	switch {
	case s.FillColor == "":
		attrs = append(attrs, `style=""`)
	case s.Shape != "" && s.Shape != defaultShape:
		attrs = append(attrs, `style="filled"`)
	}
	if s.FillColor != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.FillColor))
	}
	if s.FontColor != "" {
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", s.FontColor))
	}
	if s.PenColor != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", s.PenColor))
	}
	return attrs
}

func fmtEdgeAttrs(a diagram.Attrs) []string {
	var attrs []string
	if a.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", a.Color))
	}
	if a.Style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", a.Style))
	}
	if a.Label != "" {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", a.Label))
		if a.Color != "" {
			attrs = append(attrs, fmt.Sprintf("fontcolor=%q", a.Color))
		}
	}
	return attrs
}
