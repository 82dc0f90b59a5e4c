// Package goquery provides CSS-selector based HTML processing for
// stackdigest: article body extraction and search-result link discovery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"stackdigest"
)

// DefaultContainerSelector targets the article body container used by
// Substack post pages.
const DefaultContainerSelector = "div.body.markup"

// candidateSelector matches the block-level and heading/list elements
// considered part of the article body.
const candidateSelector = "h1, h2, h3, h4, p, li"

// excludedAncestorSelector matches containers whose descendants are never
// article text: share bars, subscribe prompts, comment threads, post
// metadata, social widgets, captions, like counters and user-feed items.
const excludedAncestorSelector = ".share, .subscribe, .comments, .post-meta, .social, " +
	".subscription, .signup, .caption, .likes, .ufi"

// excludedClasses marks elements that are interactive chrome rather than
// article text.
var excludedClasses = []string{"button", "image", "graphic", "newsletter", "footer"}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Ensure Extractor implements stackdigest.Extractor at compile time.
var _ stackdigest.Extractor = (*Extractor)(nil)

// Extractor extracts readable article text from rendered HTML using the
// page's content container and a fixed set of noise exclusions.
type Extractor struct {
	containerSelector string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContainerSelector overrides the content container selector.
// The page's main landmark remains the fallback.
func WithContainerSelector(selector string) ExtractorOption {
	return func(e *Extractor) {
		e.containerSelector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{containerSelector: DefaultContainerSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the article body as one
// whitespace-normalized text blob. A missing container or a container
// whose every candidate is excluded yields an ENOTFOUND error so callers
// can treat it as "nothing to store" rather than a failure.
func (e *Extractor) Extract(rawHTML string) (*stackdigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	container := doc.Find(e.containerSelector).First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}
	if container.Length() == 0 {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "no content container found")
	}

	var blocks []string
	container.Find(candidateSelector).Each(func(_ int, sel *goquery.Selection) {
		if isExcluded(sel) {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	// Blank-line join, then collapse all whitespace runs to single spaces.
	text := strings.Join(blocks, "\n\n")
	text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	if text == "" {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "no article text after exclusions")
	}

	return &stackdigest.ExtractResult{Title: title, Text: text}, nil
}

// isExcluded reports whether a candidate element is noise rather than
// article text.
func isExcluded(sel *goquery.Selection) bool {
	if sel.ParentsFiltered(excludedAncestorSelector).Length() > 0 {
		return true
	}
	if sel.ParentsFiltered("script, style").Length() > 0 {
		return true
	}
	for _, class := range excludedClasses {
		if sel.HasClass(class) {
			return true
		}
	}
	return false
}
