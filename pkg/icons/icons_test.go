package icons

import (
	"testing"

	"github.com/macro-ai/archdiagrams/pkg/errors"
)

func TestLookup(t *testing.T) {
	k, err := Lookup(AWSFargate)
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if k.Provider != "aws" || k.Category != "compute" || k.Name != "Fargate" {
		t.Errorf("Lookup() = %+v", k)
	}
	if k.Path() != AWSFargate {
		t.Errorf("Path() = %q, want %q", k.Path(), AWSFargate)
	}
	if k.Style.Shape == "" {
		t.Error("resolved kind has no shape")
	}
}

func TestLookup_Errors(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"unknown name", "aws.compute.Mainframe"},
		{"unknown provider", "gcp.compute.GCE"},
		{"too short", "aws.EC2"},
		{"empty segment", "aws..EC2"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup(tt.path)
			if !errors.Is(err, errors.ErrCodeUnknownKind) {
				t.Errorf("Lookup(%q) error = %v, want UNKNOWN_KIND", tt.path, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	paths := Paths()
	if len(paths) != len(catalog) {
		t.Fatalf("Paths() returned %d entries, want %d", len(paths), len(catalog))
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Errorf("Paths() not sorted at %d: %q >= %q", i, paths[i-1], paths[i])
		}
	}
	for _, p := range paths {
		if _, err := Lookup(p); err != nil {
			t.Errorf("Lookup(%q) error: %v", p, err)
		}
	}
}

func TestSameCategorySameStyle(t *testing.T) {
	a, _ := Lookup(AWSRDS)
	b, _ := Lookup(AWSElastiCache)
	if a.Style != b.Style {
		t.Errorf("database kinds styled differently: %+v vs %+v", a.Style, b.Style)
	}
}
