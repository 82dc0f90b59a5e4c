// Package fs writes digests to the local filesystem. It serves as the
// delivery target on hosts without mail credentials, so a run's output can
// still be inspected in a browser.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stackdigest"
)

// Ensure DigestWriter implements stackdigest.Notifier at compile time.
var _ stackdigest.Notifier = (*DigestWriter)(nil)

// DigestWriter saves each digest as an HTML file in a directory. Files are
// named by date, so a second run on the same day overwrites the earlier
// digest with the fuller one.
type DigestWriter struct {
	dir string

	// now returns the current time. Overridable in tests.
	now func() time.Time
}

// NewDigestWriter creates a DigestWriter targeting dir. The directory is
// created on first write.
func NewDigestWriter(dir string) *DigestWriter {
	return &DigestWriter{dir: dir, now: time.Now}
}

// Notify writes htmlBody to dir as digest-YYYY-MM-DD.html.
func (w *DigestWriter) Notify(ctx context.Context, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "creating digest directory: %v", err)
	}

	name := fmt.Sprintf("digest-%s.html", w.now().UTC().Format("2006-01-02"))
	path := filepath.Join(w.dir, name)

	doc := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
		subject, htmlBody)

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "writing digest file: %v", err)
	}

	return nil
}
