package readability_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/readability"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article text and title", func(t *testing.T) {
		t.Parallel()

		// go-readability needs enough prose to identify the content node.
		para := strings.Repeat("This sentence is part of the main article body and long enough to score. ", 10)
		html := `<html><head><title>Scored Post</title></head><body>
			<nav><a href="/">home</a></nav>
			<article><p>` + para + `</p><p>` + para + `</p></article>
		</body></html>`

		e := readability.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Contains(t, result.Text, "part of the main article body")
		assert.NotContains(t, result.Text, "home")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINVALID, stackdigest.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when no text survives", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("<html><body></body></html>")
		require.Error(t, err)
		assert.Equal(t, stackdigest.ENOTFOUND, stackdigest.ErrorCode(err))
	})
}
