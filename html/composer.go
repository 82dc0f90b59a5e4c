// Package html renders digest entries into a styled HTML document ready
// for mail transport.
package html

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"stackdigest"
)

// fallbackTitle labels entries whose article title is missing.
const fallbackTitle = "Untitled Article"

// Emphasis markers: double asterisks map to strong emphasis, single to
// secondary emphasis. Substitution runs after escaping, so the asterisks
// themselves are intentionally never escaped.
var (
	strongRE = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emRE     = regexp.MustCompile(`\*(.*?)\*`)
)

// Ensure Composer implements stackdigest.Composer at compile time.
var _ stackdigest.Composer = (*Composer)(nil)

// Composer renders digest entries as inline-styled HTML.
type Composer struct{}

// NewComposer creates a new Composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the digest document for the given day. Entries with a
// missing title fall back to a generic one; an empty entry set produces a
// labeled placeholder rather than an empty document.
func (c *Composer) Compose(entries []*stackdigest.DigestEntry, day time.Time) string {
	var sb strings.Builder

	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; border: 1px solid #ddd; border-radius: 8px;">` + "\n")
	fmt.Fprintf(&sb, `<h1 style="color: #333; font-size: 24px; margin-bottom: 20px;">AI Article Summaries - %s</h1>`+"\n",
		day.Format("2006-01-02"))

	if len(entries) == 0 {
		sb.WriteString(`<p style="color: #333; font-size: 16px; line-height: 1.6; margin: 0;">No summaries for this digest.</p>` + "\n")
	}

	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = fallbackTitle
		}

		sb.WriteString(`<div style="margin-bottom: 20px;">` + "\n")
		fmt.Fprintf(&sb, `<h2 style="color: #2c5282; font-size: 20px; margin: 0 0 10px 0; border-bottom: 2px solid #2c5282; padding-bottom: 5px;"><a href="%s" style="color: #2c5282; text-decoration: none;">%s</a></h2>`+"\n",
			escape(entry.URL), escape(title))
		fmt.Fprintf(&sb, `<p style="color: #333; font-size: 16px; line-height: 1.6; margin: 0;">%s</p>`+"\n",
			styleSummary(entry.Summary))
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</div>\n")
	return sb.String()
}

// escape neutralizes the three reserved markup characters. Ampersand must
// go first so later substitutions are not double-escaped.
func escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// styleSummary escapes reserved characters, then maps emphasis markers to
// styled spans and literal newlines to line breaks. Escaping first means
// model-generated text can never inject markup, while the markers still
// match because escape leaves asterisks alone.
func styleSummary(text string) string {
	safe := escape(text)
	safe = strongRE.ReplaceAllString(safe, `<span style="color: #2c5282; font-weight: bold;">$1</span>`)
	safe = emRE.ReplaceAllString(safe, `<span style="color: #2c827f;">$1</span>`)
	safe = strings.ReplaceAll(safe, "\n", "<br>")
	return safe
}
