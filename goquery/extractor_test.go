package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/goquery"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts block text from the content container", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>My Post</title></head><body>
			<div class="body markup">
				<h1>Heading</h1>
				<p>First paragraph.</p>
				<p>Second paragraph.</p>
			</div>
		</body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "My Post", result.Title)
		assert.Equal(t, "Heading First paragraph. Second paragraph.", result.Text)
	})

	t.Run("falls back to main landmark", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Landmark content.</p></main></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Landmark content.", result.Text)
	})

	t.Run("returns ENOTFOUND when no container exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>Loose text.</p></div></body></html>`

		e := goquery.NewExtractor()
		_, err := e.Extract(html)
		require.Error(t, err)
		assert.Equal(t, stackdigest.ENOTFOUND, stackdigest.ErrorCode(err))
	})

	t.Run("excludes elements under noise ancestors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body markup">
			<p>Kept paragraph.</p>
			<div class="share"><p>Share this post!</p></div>
			<div class="comments"><li>A comment</li></div>
			<div class="post-meta"><p>5 min read</p></div>
			<div class="ufi"><p>Like count</p></div>
		</div></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Kept paragraph.", result.Text)
	})

	t.Run("excludes chrome-classed elements and script descendants", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body markup">
			<p>Article text.</p>
			<p class="button">Subscribe now</p>
			<p class="newsletter">Join the newsletter</p>
			<script><p>window.data</p></script>
		</div></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Article text.", result.Text)
	})

	t.Run("returns ENOTFOUND when every candidate is excluded", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body markup">
			<div class="share"><p>Share</p></div>
			<p class="button">Subscribe</p>
		</div></body></html>`

		e := goquery.NewExtractor()
		_, err := e.Extract(html)
		require.Error(t, err)
		assert.Equal(t, stackdigest.ENOTFOUND, stackdigest.ErrorCode(err),
			"excluding everything must be indistinguishable from no container, not an empty result")
	})

	t.Run("normalizes whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body markup">
			<p>Spaced    out
			text.</p>
			<p>Next block.</p>
		</div></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Spaced out text. Next block.", result.Text)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINVALID, stackdigest.ErrorCode(err))
	})

	t.Run("honors a custom container selector", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article class="entry"><p>Custom container.</p></article></body></html>`

		e := goquery.NewExtractor(goquery.WithContainerSelector("article.entry"))
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Custom container.", result.Text)
	})
}
