// Package config loads the optional archdiagrams configuration file.
//
// The file is TOML. Every key is optional; command-line flags override it.
//
//	output_dir = "docs/diagrams"
//	format     = "png"
//	only       = ["consolidated", "future-scaling"]
//	detailed   = false
//
//	[[scene]]
//	key       = "queue-workers"
//	name      = "Queue Workers"
//	title     = "Queue Worker Architecture"
//	direction = "LR"
//
//	  [[scene.node]]
//	  id    = "api"
//	  kind  = "aws.compute.Fargate"
//	  label = "API Tasks"
//
//	  [[scene.cluster]]
//	  label = "Workers"
//
//	    [[scene.cluster.node]]
//	    id    = "worker"
//	    kind  = "aws.compute.Lambda"
//	    label = "Worker"
//
//	  [[scene.edge]]
//	  from  = "api"
//	  to    = "worker"
//	  color = "blue"
//	  style = "dashed"
//	  label = "enqueue"
//
// Scenes declared here are appended after the built-in scenes.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/macro-ai/archdiagrams/pkg/errors"
)

// DefaultOutputDir is where diagrams go when nothing else is configured.
const DefaultOutputDir = "docs/diagrams"

// Config is the decoded configuration file.
type Config struct {
	OutputDir string   `toml:"output_dir"`
	Format    string   `toml:"format"`
	Only      []string `toml:"only"`
	Detailed  bool     `toml:"detailed"`
	Scenes    []Scene  `toml:"scene"`
}

// Scene declares a custom diagram.
type Scene struct {
	Key       string    `toml:"key"`
	Name      string    `toml:"name"`
	Title     string    `toml:"title"`
	Direction string    `toml:"direction"`
	Nodes     []Node    `toml:"node"`
	Clusters  []Cluster `toml:"cluster"`
	Edges     []Edge    `toml:"edge"`
}

// Cluster groups nodes and nested clusters.
type Cluster struct {
	Label    string    `toml:"label"`
	Nodes    []Node    `toml:"node"`
	Clusters []Cluster `toml:"cluster"`
}

// Node declares one node. ID is local to the scene and used by edges.
type Node struct {
	ID    string `toml:"id"`
	Kind  string `toml:"kind"`
	Label string `toml:"label"`
}

// Edge connects two node IDs. An empty From declares an annotation edge
// into To.
type Edge struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Color string `toml:"color"`
	Style string `toml:"style"`
	Label string `toml:"label"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{OutputDir: DefaultOutputDir}
}

// Load decodes the file at path on top of [Default] and validates it.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML source on top of [Default] and validates it.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %s", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural rules. Node kinds and edge endpoints are
// checked when the scene is built, so a bad custom scene fails on its own
// instead of aborting the whole run.
func (c Config) Validate() error {
	if err := errors.ValidateOutputDir(c.OutputDir); err != nil {
		return err
	}
	for _, k := range c.Only {
		if err := errors.ValidateSceneKey(k); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "only")
		}
	}

	seen := make(map[string]bool, len(c.Scenes))
	for i, s := range c.Scenes {
		if err := s.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "scene %d", i+1)
		}
		if seen[s.Key] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate scene key %q", s.Key)
		}
		seen[s.Key] = true
	}
	return nil
}

func (s Scene) validate() error {
	if err := errors.ValidateSceneKey(s.Key); err != nil {
		return err
	}
	if strings.TrimSpace(s.Title) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q has no title", s.Key)
	}
	switch strings.ToUpper(s.Direction) {
	case "", "TB", "LR":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "scene %q: invalid direction %q (must be TB or LR)", s.Key, s.Direction)
	}

	ids := make(map[string]bool)
	var walk func(nodes []Node, clusters []Cluster) error
	walk = func(nodes []Node, clusters []Cluster) error {
		for _, n := range nodes {
			if n.ID == "" {
				return errors.New(errors.ErrCodeInvalidInput, "scene %q: node %q has no id", s.Key, n.Label)
			}
			if ids[n.ID] {
				return errors.New(errors.ErrCodeInvalidInput, "scene %q: duplicate node id %q", s.Key, n.ID)
			}
			ids[n.ID] = true
		}
		for _, c := range clusters {
			if err := walk(c.Nodes, c.Clusters); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(s.Nodes, s.Clusters); err != nil {
		return err
	}

	for i, e := range s.Edges {
		if e.To == "" {
			return errors.New(errors.ErrCodeInvalidInput, "scene %q: edge %d has no target", s.Key, i+1)
		}
	}
	return nil
}

// DisplayName returns Name, falling back to Title.
func (s Scene) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Title
}

// String implements fmt.Stringer for log output.
func (c Config) String() string {
	return fmt.Sprintf("output_dir=%s format=%s only=%v scenes=%d", c.OutputDir, c.Format, c.Only, len(c.Scenes))
}
