// Package readability provides a heuristic article extractor for pages
// whose markup does not match the selector-driven extraction filter.
package readability

import (
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"stackdigest"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Ensure Extractor implements stackdigest.Extractor at compile time.
var _ stackdigest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article text from HTML.
// Unlike the goquery extractor it needs no site-specific selectors, at
// the cost of less precise noise removal.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body text.
func (e *Extractor) Extract(rawHTML string) (*stackdigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(article.TextContent, " "))
	if text == "" {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "no article text found")
	}

	return &stackdigest.ExtractResult{
		Title: article.Title,
		Text:  text,
	}, nil
}
