package diagram

import (
	"fmt"
	"strings"

	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/icons"
)

// Direction is the rank direction of the layout.
type Direction string

const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
)

// ParseDirection accepts "TB" or "LR" (case-insensitive). Empty means TB.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "TB":
		return TopToBottom, nil
	case "LR":
		return LeftToRight, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid direction %q (must be TB or LR)", s)
	}
}

// Line styles understood by Graphviz.
const (
	Solid  = "solid"
	Dashed = "dashed"
	Dotted = "dotted"
	Bold   = "bold"
)

var validStyles = map[string]bool{"": true, Solid: true, Dashed: true, Dotted: true, Bold: true}

// Attrs are the presentational attributes of an edge. Zero values fall back
// to the renderer defaults.
type Attrs struct {
	Color string
	Style string
	Label string
}

// Node is a labelled, typed vertex.
type Node struct {
	ID    string     // diagram-unique identifier, assigned on creation
	Label string     // display text, may contain "\n"
	Kind  icons.Kind // zero for anchors

	// Anchor marks the synthetic start point of an annotation edge.
	Anchor bool

	diagram *Diagram
	owner   *scope
}

// Edge is a directed connection between two nodes of the same diagram.
type Edge struct {
	From  *Node
	To    *Node
	Attrs Attrs
}

// scope is the part shared by a Diagram and its Clusters: both own nodes
// and nested clusters.
type scope struct {
	d        *Diagram
	depth    int
	nodes    []*Node
	clusters []*Cluster
}

// Cluster is a named visual grouping inside a Diagram or another Cluster.
type Cluster struct {
	scope
	Label string
}

// Diagram is one architecture scene.
type Diagram struct {
	scope
	Title     string
	Direction Direction

	all   []*Node
	edges []Edge
	err   error
}

// New creates an empty diagram. An empty direction means [TopToBottom].
func New(title string, dir Direction) *Diagram {
	if dir == "" {
		dir = TopToBottom
	}
	d := &Diagram{Title: title, Direction: dir}
	d.scope.d = d
	return d
}

// Node declares a node of the given kind in this scope. Unknown kinds are
// recorded as the diagram's error; the returned node is still usable so the
// rest of the scene can be declared.
func (s *scope) Node(kind icons.Path, label string) *Node {
	k, err := icons.Lookup(kind)
	if err != nil {
		s.d.fail(err)
	}
	return s.add(&Node{Label: label, Kind: k})
}

// Cluster declares a nested cluster and populates it with fn.
func (s *scope) Cluster(label string, fn func(c *Cluster)) *Cluster {
	c := &Cluster{Label: label}
	c.scope = scope{d: s.d, depth: s.depth + 1}
	s.clusters = append(s.clusters, c)
	if fn != nil {
		fn(c)
	}
	return c
}

// Nodes returns the nodes declared directly in this scope.
func (s *scope) Nodes() []*Node { return s.nodes }

// Clusters returns the clusters declared directly in this scope.
func (s *scope) Clusters() []*Cluster { return s.clusters }

// Depth is the nesting depth: 0 for the diagram, 1 for top-level clusters.
func (s *scope) Depth() int { return s.depth }

func (s *scope) add(n *Node) *Node {
	n.ID = fmt.Sprintf("n%d", len(s.d.all))
	n.diagram = s.d
	n.owner = s
	s.nodes = append(s.nodes, n)
	s.d.all = append(s.d.all, n)
	return n
}

// Connect adds a directed edge. Only the first attrs value is used.
func (d *Diagram) Connect(from, to *Node, attrs ...Attrs) {
	var a Attrs
	if len(attrs) > 0 {
		a = attrs[0]
	}
	if !d.owns(from) {
		d.fail(errors.New(errors.ErrCodeDanglingEdge, "edge source %s is not declared in %q", describe(from), d.Title))
		return
	}
	if !d.owns(to) {
		d.fail(errors.New(errors.ErrCodeDanglingEdge, "edge target %s is not declared in %q", describe(to), d.Title))
		return
	}
	if !validStyles[a.Style] {
		d.fail(errors.New(errors.ErrCodeInvalidInput, "invalid edge style %q", a.Style))
		return
	}
	d.edges = append(d.edges, Edge{From: from, To: to, Attrs: a})
}

// Chain connects each node to the next with default attributes:
// Chain(a, b, c) is a → b → c.
func (d *Diagram) Chain(nodes ...*Node) {
	for i := 1; i < len(nodes); i++ {
		d.Connect(nodes[i-1], nodes[i])
	}
}

// Fan connects every node of from to every node of to.
func (d *Diagram) Fan(from, to []*Node, attrs ...Attrs) {
	for _, f := range from {
		for _, t := range to {
			d.Connect(f, t, attrs...)
		}
	}
}

// Annotate draws a labelled edge into target that has no meaningful source.
// A point anchor is declared next to target to start the edge from.
func (d *Diagram) Annotate(target *Node, attrs Attrs) {
	if !d.owns(target) {
		d.fail(errors.New(errors.ErrCodeDanglingEdge, "annotation target %s is not declared in %q", describe(target), d.Title))
		return
	}
	anchor := target.owner.add(&Node{Anchor: true})
	d.Connect(anchor, target, attrs)
}

// Edges returns every edge in declaration order.
func (d *Diagram) Edges() []Edge { return d.edges }

// AllNodes returns every node of the diagram, including those inside
// clusters, in declaration order.
func (d *Diagram) AllNodes() []*Node { return d.all }

// Validate returns the first error recorded while declaring the diagram and
// re-checks that every edge endpoint belongs to it.
func (d *Diagram) Validate() error {
	if d.err != nil {
		return d.err
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "diagram title cannot be empty")
	}
	if d.Direction != TopToBottom && d.Direction != LeftToRight {
		return errors.New(errors.ErrCodeInvalidInput, "invalid direction %q", d.Direction)
	}
	for _, e := range d.edges {
		if !d.owns(e.From) || !d.owns(e.To) {
			return errors.New(errors.ErrCodeDanglingEdge, "edge %s -> %s leaves %q", describe(e.From), describe(e.To), d.Title)
		}
	}
	return nil
}

func (d *Diagram) owns(n *Node) bool {
	return n != nil && n.diagram == d
}

func (d *Diagram) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func describe(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", strings.ReplaceAll(n.Label, "\n", " "))
}
