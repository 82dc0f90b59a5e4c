package stackdigest

import "time"

// Composer renders a run's digest entries into a document ready for
// transport. The result is always well-formed: an empty entry set renders
// a labeled placeholder, and entries with missing fields fall back to
// generic values.
type Composer interface {
	Compose(entries []*DigestEntry, day time.Time) string
}
