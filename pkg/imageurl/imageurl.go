// Package imageurl normalizes product image references coming back from the
// shop API, which mixes absolute URLs, host-relative paths, and bare
// filenames depending on how the product was uploaded.
package imageurl

import "strings"

// Placeholder is served when a product has no usable image.
const Placeholder = "/placeholder-image.jpg"

// Normalizer rewrites image paths against the shop API origin.
type Normalizer struct {
	origin string
}

// New trims any trailing slash off the origin so joins stay predictable.
func New(origin string) Normalizer {
	return Normalizer{origin: strings.TrimRight(origin, "/")}
}

// Normalize returns a fully qualified image URL, or the placeholder when the
// path is empty.
func (n Normalizer) Normalize(path string) string {
	if path == "" {
		return Placeholder
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return n.origin + path
	}
	return n.origin + "/" + path
}
