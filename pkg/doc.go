// Package pkg provides the libraries behind the archdiagrams CLI.
//
// # Overview
//
// archdiagrams renders the deployment architecture of the Macro AI
// application as static images. Every diagram is a scene declared in Go (or
// in the TOML config file) and laid out by Graphviz. The pkg directory is
// organized as follows:
//
//  1. [icons] - Catalog of node kinds (aws.compute.ECS, onprem.database.PostgreSQL, ...)
//  2. [diagram] - Scene model and builder DSL (nodes, clusters, edges)
//  3. [render/nodelink] - DOT generation and Graphviz rendering; [render] converts SVG to PNG, JPG and PDF
//  4. [scenes] - Built-in scenes, the ordered registry and contained generation
//  5. [pipeline] - Orchestration (output directory, run, report)
//  6. [config] - Optional TOML configuration
//  7. [errors], [observability], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The data flow of one run:
//
//	scenes.Registry (built-in + config scenes)
//	         ↓
//	    [scenes] Builder → *diagram.Diagram
//	         ↓
//	    [render/nodelink] ToDOT → Graphviz → SVG
//	         ↓
//	    [render] rsvg-convert → PNG/JPG/PDF
//	         ↓
//	    docs/diagrams/<slug of title>.png
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/macro-ai/archdiagrams/pkg/pipeline"
//	    "github.com/macro-ai/archdiagrams/pkg/scenes"
//	)
//
//	report, err := pipeline.NewRunner(scenes.TextReporter{W: os.Stdout}, nil).
//	    Run(context.Background(), pipeline.Options{Scenes: scenes.Default().All()})
//	if err != nil {
//	    return err // output directory unusable
//	}
//	if !report.OK() {
//	    // some scenes failed; see report.Failed()
//	}
//
// A single diagram can be declared and rendered directly:
//
//	d := diagram.New("Queue Workers", diagram.LeftToRight)
//	d.Chain(d.Node(icons.AWSSQS, "Jobs"), d.Node(icons.AWSLambda, "Worker"))
//	png, err := nodelink.NewRenderer(nodelink.FormatPNG, nodelink.Options{}).RenderBytes(ctx, d)
package pkg
