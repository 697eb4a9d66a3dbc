package scenes

import (
	"slices"
	"testing"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/icons"
)

func TestDefault_Order(t *testing.T) {
	r := Default()
	want := []string{KeyCurrentHobby, KeyConsolidated, KeyFutureScaling, KeyNeonBranching}
	if got := r.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	names := []string{}
	for _, s := range r.All() {
		names = append(names, s.Name)
	}
	wantNames := []string{
		"Current Hobby Architecture",
		"Consolidated Architecture",
		"Future Scaling Architecture",
		"Corrected Neon Branching",
	}
	if !slices.Equal(names, wantNames) {
		t.Errorf("names = %v, want %v", names, wantNames)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	noop := func() (*diagram.Diagram, error) { return diagram.New("x", ""), nil }

	if err := r.Register(Scene{Key: "a", Builder: noop}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if s, _ := r.Get("a"); s.Name != "a" {
		t.Errorf("Name should default to key, got %q", s.Name)
	}

	tests := []struct {
		name  string
		scene Scene
	}{
		{"duplicate", Scene{Key: "a", Builder: noop}},
		{"bad key", Scene{Key: "Bad Key", Builder: noop}},
		{"no builder", Scene{Key: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.scene); err == nil {
				t.Error("Register() should fail")
			}
		})
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestScene_Build(t *testing.T) {
	tests := []struct {
		name      string
		builder   Builder
		code      errors.Code
		wantTitle string
	}{
		{"ok", tinyScene("ok", "Tiny").Builder, "", "Tiny"},
		{"no builder", nil, errors.ErrCodeInvalidInput, ""},
		{"nil diagram", func() (*diagram.Diagram, error) { return nil, nil }, errors.ErrCodeInternal, ""},
		{"panic", func() (*diagram.Diagram, error) { panic("icon set exploded") }, errors.ErrCodeBuilderPanic, ""},
		{"invalid diagram", func() (*diagram.Diagram, error) {
			d := diagram.New("Broken", diagram.TopToBottom)
			d.Node("aws.compute.Mainframe", "Legacy")
			return d, nil
		}, errors.ErrCodeUnknownKind, "Broken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Scene{Key: "s", Builder: tt.builder}.Build()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Build() error: %v", err)
				}
			} else if !errors.Is(err, tt.code) {
				t.Fatalf("Build() error = %v, want %s", err, tt.code)
			}
			var title string
			if d != nil {
				title = d.Title
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}

func TestRegistry_Select(t *testing.T) {
	r := Default()

	all, err := r.Select(nil)
	if err != nil || len(all) != 4 {
		t.Fatalf("Select(nil) = %d scenes, %v", len(all), err)
	}

	got, err := r.Select([]string{KeyNeonBranching, " " + KeyCurrentHobby})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if len(got) != 2 || got[0].Key != KeyCurrentHobby || got[1].Key != KeyNeonBranching {
		t.Errorf("Select() should keep registry order, got %v", got)
	}

	_, err = r.Select([]string{"nope"})
	if !errors.Is(err, errors.ErrCodeUnknownScene) {
		t.Errorf("Select() error = %v, want UNKNOWN_SCENE", err)
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		key       string
		title     string
		file      string
		direction diagram.Direction
		nodes     int
		edges     int
		clusters  int
	}{
		{KeyCurrentHobby, "Current Hobby Deployment Architecture", "current_hobby_deployment_architecture.png", diagram.TopToBottom, 10, 9, 1},
		{KeyConsolidated, "Consolidated ECS + External Services Architecture", "consolidated_ecs_+_external_services_architecture.png", diagram.TopToBottom, 11, 10, 2},
		{KeyFutureScaling, "Future Scaling Architecture", "future_scaling_architecture.png", diagram.TopToBottom, 15, 15, 2},
		{KeyNeonBranching, "Corrected Neon Database Branching Strategy", "corrected_neon_database_branching_strategy.png", diagram.LeftToRight, 10, 14, 2},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, ok := r.Get(tt.key)
			if !ok {
				t.Fatalf("scene %q not registered", tt.key)
			}
			d, err := s.Builder()
			if err != nil {
				t.Fatalf("Builder() error: %v", err)
			}
			if err := d.Validate(); err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if d.Title != tt.title {
				t.Errorf("Title = %q, want %q", d.Title, tt.title)
			}
			if got := d.Filename("png"); got != tt.file {
				t.Errorf("Filename() = %q, want %q", got, tt.file)
			}
			if d.Direction != tt.direction {
				t.Errorf("Direction = %q, want %q", d.Direction, tt.direction)
			}
			if got := len(d.AllNodes()); got != tt.nodes {
				t.Errorf("nodes = %d, want %d", got, tt.nodes)
			}
			if got := len(d.Edges()); got != tt.edges {
				t.Errorf("edges = %d, want %d", got, tt.edges)
			}
			if got := len(d.Clusters()); got != tt.clusters {
				t.Errorf("top-level clusters = %d, want %d", got, tt.clusters)
			}
		})
	}
}

func TestFutureScaling_Annotations(t *testing.T) {
	d, _ := FutureScaling()
	var labels []string
	for _, e := range d.Edges() {
		if e.From.Anchor {
			labels = append(labels, e.Attrs.Label)
		}
	}
	want := []string{"Auto Scale\n2-10 tasks", "Auto Scale\n2-5 tasks", "Auto-branching"}
	if !slices.Equal(labels, want) {
		t.Errorf("annotation labels = %q, want %q", labels, want)
	}
}

func TestNeonBranching_EdgeStyles(t *testing.T) {
	d, _ := NeonBranching()
	var dashed, labelled int
	for _, e := range d.Edges() {
		if e.Attrs.Style == diagram.Dashed {
			dashed++
		}
		if e.Attrs.Label != "" {
			labelled++
		}
	}
	if dashed != 2 {
		t.Errorf("dashed schema-sync edges = %d, want 2", dashed)
	}
	if labelled != 6 {
		t.Errorf("labelled edges = %d, want 6", labelled)
	}
}

func TestBuiltinKindsResolve(t *testing.T) {
	for _, s := range Default().All() {
		d, _ := s.Builder()
		for _, n := range d.AllNodes() {
			if n.Anchor {
				continue
			}
			if _, err := icons.Lookup(n.Kind.Path()); err != nil {
				t.Errorf("%s: node %q: %v", s.Key, n.Label, err)
			}
		}
	}
}
