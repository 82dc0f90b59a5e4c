package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/trafilatura"
)

// Ensure Extractor implements stackdigest.Extractor at compile time.
var _ stackdigest.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as plain text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>AI Weekly</title></head>
<body>
<nav><a href="/">Home</a><a href="/archive">Archive</a></nav>
<article>
<h1>The State of AI</h1>
<p>This is important article content that should be extracted.</p>
<p>A second paragraph with more discussion of the topic at hand.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "important article content")
		assert.NotContains(t, result.Text, "<p>")
	})

	t.Run("collapses whitespace to single spaces", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Heading</h1>
<p>First    paragraph
with	internal whitespace.</p>
<p>Second paragraph.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "\n")
		assert.NotContains(t, result.Text, "  ")
	})

	t.Run("empty input returns invalid error", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, stackdigest.EINVALID, stackdigest.ErrorCode(err))
	})

	t.Run("page without content returns not found", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(`<html><head><title>Empty</title></head><body></body></html>`)

		require.Error(t, err)
		assert.Equal(t, stackdigest.ENOTFOUND, stackdigest.ErrorCode(err))
	})
}
