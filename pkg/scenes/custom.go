package scenes

import (
	"github.com/macro-ai/archdiagrams/pkg/config"
	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/icons"
)

// FromConfig turns a scene declared in the config file into a Scene.
// Problems with node kinds or edge endpoints surface when the builder runs,
// so they fail that scene only.
func FromConfig(cs config.Scene) Scene {
	return Scene{
		Key:     cs.Key,
		Name:    cs.DisplayName(),
		Builder: func() (*diagram.Diagram, error) { return buildConfigScene(cs) },
	}
}

// RegisterConfig appends every scene of cfg to r.
func RegisterConfig(r *Registry, cfg config.Config) error {
	for _, cs := range cfg.Scenes {
		if err := r.Register(FromConfig(cs)); err != nil {
			return err
		}
	}
	return nil
}

type declarer interface {
	Node(kind icons.Path, label string) *diagram.Node
	Cluster(label string, fn func(c *diagram.Cluster)) *diagram.Cluster
}

func buildConfigScene(cs config.Scene) (*diagram.Diagram, error) {
	dir, err := diagram.ParseDirection(cs.Direction)
	if err != nil {
		return nil, err
	}
	d := diagram.New(cs.Title, dir)
	byID := make(map[string]*diagram.Node)

	var declare func(s declarer, nodes []config.Node, clusters []config.Cluster)
	declare = func(s declarer, nodes []config.Node, clusters []config.Cluster) {
		for _, n := range nodes {
			byID[n.ID] = s.Node(icons.Path(n.Kind), n.Label)
		}
		for _, c := range clusters {
			s.Cluster(c.Label, func(sub *diagram.Cluster) {
				declare(sub, c.Nodes, c.Clusters)
			})
		}
	}
	declare(d, cs.Nodes, cs.Clusters)

	for _, e := range cs.Edges {
		to, ok := byID[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeDanglingEdge, "scene %q: edge target %q is not a declared node", cs.Key, e.To)
		}
		attrs := diagram.Attrs{Color: e.Color, Style: e.Style, Label: e.Label}
		if e.From == "" {
			d.Annotate(to, attrs)
			continue
		}
		from, ok := byID[e.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeDanglingEdge, "scene %q: edge source %q is not a declared node", cs.Key, e.From)
		}
		d.Connect(from, to, attrs)
	}
	return d, nil
}
