package mock

import "github.com/kspala/recipeclip"

var _ recipeclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recipeclip.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*recipeclip.Recipe, error)
}

func (e *Extractor) Extract(html string) (*recipeclip.Recipe, error) {
	return e.ExtractFn(html)
}
