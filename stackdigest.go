// Package stackdigest provides an unattended content-ingestion pipeline.
// It discovers article URLs from a search listing, extracts readable body
// text from each page, persists results with URL-level de-duplication,
// generates an AI digest of new content, and emails a formatted summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, openrouter/).
package stackdigest
