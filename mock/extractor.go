package mock

import (
	"stackdigest"
)

var _ stackdigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of stackdigest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*stackdigest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*stackdigest.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ stackdigest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of stackdigest.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, max int) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, max int) ([]string, error) {
	return e.ExtractLinksFn(html, max)
}
