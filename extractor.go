package recipeclip

// Extractor extracts a normalized recipe record from raw HTML.
type Extractor interface {
	// Extract locates recipe metadata embedded in the page and maps it
	// into a Recipe. Absent or malformed fields fall back to their
	// documented defaults rather than failing the extraction.
	//
	// Returns EUNSUPPORTED if the page carries no usable recipe metadata
	// and EPARSE if the document itself cannot be parsed.
	Extract(html string) (*Recipe, error)
}
