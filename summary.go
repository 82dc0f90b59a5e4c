package stackdigest

import "time"

// Summary represents a generated digest of one article. Summaries are
// immutable once written; the schema permits several per article but in
// practice at most one succeeds because summarization only targets the
// unprocessed backlog.
type Summary struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"articleId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// DigestEntry is one section of an outgoing digest: a summary joined with
// its owning article's title and URL.
type DigestEntry struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}
