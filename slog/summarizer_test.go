package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest/mock"
	sdslog "stackdigest/slog"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, text string) (string, error) {
				return "short summary", nil
			},
		}

		s := sdslog.NewLoggingSummarizer(inner, logger)
		summary, err := s.Summarize(context.Background(), "long article body")

		require.NoError(t, err)
		assert.Equal(t, "short summary", summary)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "input_bytes=17")
		assert.Contains(t, output, "output_bytes=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error from wrapped summarizer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, text string) (string, error) {
				return "", errors.New("model offline")
			},
		}

		s := sdslog.NewLoggingSummarizer(inner, logger)
		_, err := s.Summarize(context.Background(), "text")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "model offline")
	})
}

func TestLoggingNotifier_Notify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Notifier{
		NotifyFn: func(ctx context.Context, subject, htmlBody string) error {
			return nil
		},
	}

	n := sdslog.NewLoggingNotifier(inner, logger)
	err := n.Notify(context.Background(), "Daily Digest", "<p>x</p>")

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "notify")
	assert.Contains(t, output, `subject="Daily Digest"`)
	assert.Contains(t, output, "body_bytes=8")
}
