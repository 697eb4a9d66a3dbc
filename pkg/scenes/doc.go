// Package scenes holds the architecture diagrams archdiagrams knows how to
// draw and the machinery that generates them one at a time.
//
// # Scenes
//
// A [Scene] pairs a registry key and display name with a [Builder] that
// declares a fixed diagram. The built-in scenes, in generation order:
//
//   - current-hobby: the single-host EC2 deployment
//   - consolidated: ECS Fargate plus free-tier external services
//   - future-scaling: the auto-scaled deployment behind CloudFront
//   - neon-branching: the Neon database branching strategy
//
// Custom scenes declared in the config file are turned into builders by
// [FromConfig].
//
// # Failure containment
//
// [Generator.Generate] never returns an error and never panics. Whatever
// goes wrong while building, validating, rendering or writing a scene
// (including a panic inside a builder) ends up in [Result.Err] and is
// reported as a one-line failure.
package scenes
