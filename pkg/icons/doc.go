// Package icons is the catalog of node kinds a diagram can use.
//
// A kind is addressed by a dotted [Path] of provider, category and name,
// mirroring how cloud icon sets are usually organised:
//
//	aws.compute.EC2
//	aws.security.SecretsManager
//	onprem.database.PostgreSQL
//	generic.blank.Blank
//
// Each kind carries a [Style] (Graphviz shape and colours) derived from its
// category, so nodes of the same category look alike across diagrams.
//
// Looking up a path that is not in the catalog fails with
// errors.ErrCodeUnknownKind. Diagram builders treat that exactly like a
// missing icon: the diagram cannot be drawn.
package icons
