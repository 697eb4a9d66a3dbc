package diagram

import (
	"testing"

	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/icons"
)

func TestNew_DefaultDirection(t *testing.T) {
	d := New("Empty", "")
	if d.Direction != TopToBottom {
		t.Errorf("Direction = %q, want %q", d.Direction, TopToBottom)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestDeclareNodesAndClusters(t *testing.T) {
	d := New("Scene", TopToBottom)
	users := d.Node(icons.OnpremUsers, "End Users")

	var inner *Node
	outer := d.Cluster("AWS", func(c *Cluster) {
		c.Node(icons.AWSELB, "ALB")
		c.Cluster("ECS", func(c *Cluster) {
			inner = c.Node(icons.AWSFargate, "Tasks")
		})
	})
	d.Chain(users, inner)

	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if got := len(d.Nodes()); got != 1 {
		t.Errorf("top-level nodes = %d, want 1", got)
	}
	if got := len(d.AllNodes()); got != 3 {
		t.Errorf("all nodes = %d, want 3", got)
	}
	if outer.Depth() != 1 || outer.Clusters()[0].Depth() != 2 {
		t.Errorf("depths = %d, %d, want 1, 2", outer.Depth(), outer.Clusters()[0].Depth())
	}
	if len(d.Edges()) != 1 || d.Edges()[0].From != users || d.Edges()[0].To != inner {
		t.Errorf("edges = %+v", d.Edges())
	}

	seen := map[string]bool{}
	for _, n := range d.AllNodes() {
		if seen[n.ID] {
			t.Errorf("duplicate node ID %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestUnknownKind(t *testing.T) {
	d := New("Scene", TopToBottom)
	a := d.Node("aws.compute.Mainframe", "Legacy")
	b := d.Node(icons.AWSRDS, "DB")
	d.Connect(a, b)

	err := d.Validate()
	if !errors.Is(err, errors.ErrCodeUnknownKind) {
		t.Fatalf("Validate() error = %v, want UNKNOWN_KIND", err)
	}
}

func TestConnect_ForeignNode(t *testing.T) {
	other := New("Other", TopToBottom)
	foreign := other.Node(icons.AWSS3, "S3")

	d := New("Scene", TopToBottom)
	local := d.Node(icons.AWSECS, "ECS")
	d.Connect(local, foreign)

	if err := d.Validate(); !errors.Is(err, errors.ErrCodeDanglingEdge) {
		t.Fatalf("Validate() error = %v, want DANGLING_EDGE", err)
	}
	if len(d.Edges()) != 0 {
		t.Errorf("dangling edge was recorded: %+v", d.Edges())
	}
}

func TestConnect_Nil(t *testing.T) {
	d := New("Scene", TopToBottom)
	d.Connect(nil, d.Node(icons.AWSECS, "ECS"))
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeDanglingEdge) {
		t.Fatalf("Validate() error = %v, want DANGLING_EDGE", err)
	}
}

func TestConnect_InvalidStyle(t *testing.T) {
	d := New("Scene", TopToBottom)
	a := d.Node(icons.AWSECS, "A")
	b := d.Node(icons.AWSECS, "B")
	d.Connect(a, b, Attrs{Style: "wavy"})
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("Validate() error = %v, want INVALID_INPUT", err)
	}
}

func TestValidate_FirstErrorWins(t *testing.T) {
	d := New("Scene", TopToBottom)
	d.Node("nope.nope.Nope", "first")
	d.Connect(nil, nil)
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeUnknownKind) {
		t.Fatalf("Validate() error = %v, want the first recorded error", err)
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	if err := New("  ", TopToBottom).Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate() error = %v, want INVALID_INPUT", err)
	}
}

func TestFan(t *testing.T) {
	d := New("Scene", TopToBottom)
	alb := d.Node(icons.AWSELB, "ALB")
	api := d.Node(icons.AWSFargate, "API")
	ui := d.Node(icons.AWSFargate, "UI")
	d.Fan([]*Node{alb}, []*Node{api, ui}, Attrs{Color: "gray"})

	if len(d.Edges()) != 2 {
		t.Fatalf("edges = %d, want 2", len(d.Edges()))
	}
	for _, e := range d.Edges() {
		if e.From != alb || e.Attrs.Color != "gray" {
			t.Errorf("unexpected edge %+v", e)
		}
	}
}

func TestAnnotate(t *testing.T) {
	d := New("Scene", TopToBottom)
	var tasks *Node
	c := d.Cluster("ECS", func(c *Cluster) {
		tasks = c.Node(icons.AWSFargate, "Tasks")
	})
	d.Annotate(tasks, Attrs{Label: "Auto Scale", Color: "orange", Style: Dashed})

	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if got := len(c.Nodes()); got != 2 {
		t.Fatalf("cluster nodes = %d, want target plus anchor", got)
	}
	anchor := c.Nodes()[1]
	if !anchor.Anchor || !anchor.Kind.IsZero() {
		t.Errorf("anchor = %+v", anchor)
	}
	e := d.Edges()[0]
	if e.From != anchor || e.To != tasks || e.Attrs.Label != "Auto Scale" {
		t.Errorf("annotation edge = %+v", e)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", TopToBottom, false},
		{"TB", TopToBottom, false},
		{"lr", LeftToRight, false},
		{" LR ", LeftToRight, false},
		{"BT", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSlugAndFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Current Hobby Deployment Architecture", "current_hobby_deployment_architecture"},
		{"Consolidated ECS + External Services Architecture", "consolidated_ecs_+_external_services_architecture"},
		{"  Spaced   Out\tTitle ", "spaced_out_title"},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}

	d := New("Future Scaling Architecture", TopToBottom)
	if got := d.Filename("png"); got != "future_scaling_architecture.png" {
		t.Errorf("Filename() = %q", got)
	}
}
