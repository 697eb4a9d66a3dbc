package diagram

import "strings"

// Slug turns a title into a file stem: words are lowercased and joined with
// underscores. "Future Scaling Architecture" becomes
// "future_scaling_architecture".
func Slug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "_"))
}

// Filename returns the output file name for the given extension
// (without the dot).
func (d *Diagram) Filename(ext string) string {
	return Slug(d.Title) + "." + ext
}
