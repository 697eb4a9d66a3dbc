// Package diagram describes architecture diagrams as data.
//
// A [Diagram] owns nodes, nested clusters and directed edges. It holds no
// layout: positions are left entirely to the renderer (see
// pkg/render/nodelink). Builders declare a scene top-down:
//
//	d := diagram.New("Future Scaling Architecture", diagram.TopToBottom)
//	users := d.Node(icons.OnpremUsers, "End Users")
//	d.Cluster("ECS Fargate Cluster", func(c *diagram.Cluster) {
//	    api = c.Node(icons.AWSFargate, "API Tasks")
//	})
//	d.Chain(users, api)
//	d.Connect(api, db, diagram.Attrs{Color: "blue", Style: diagram.Dashed, Label: "Primary DB"})
//
// # Errors
//
// Declaration methods never return errors so scenes read as straight-line
// descriptions. The first problem (an unknown node kind, an edge to a node of
// another diagram) is recorded and reported by [Diagram.Validate]; renderers
// call Validate before drawing anything.
//
// # Lifetime
//
// A Diagram is built, rendered once and dropped. It is not safe for
// concurrent use.
package diagram
