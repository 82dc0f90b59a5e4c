package main

import (
	"fmt"
	"strconv"
	"time"

	"stackdigest"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	recs, err := deps.Runs.RecentRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		errMsg := ""
		if rec.Error != "" {
			errMsg = truncate(rec.Error, 50)
		}
		rows = append(rows, []string{
			rec.RunDate.Format("2006-01-02"),
			strconv.Itoa(rec.Scraped),
			strconv.Itoa(rec.Summarized),
			strconv.FormatBool(rec.Notified),
			fmt.Sprintf("%.1fs", rec.ElapsedSeconds),
			errMsg,
		})
	}

	renderTable(deps.Stdout, []string{"Date", "Scraped", "Summarized", "Sent", "Elapsed", "Error"}, rows)
	return nil
}

// Run executes the today command.
func (c *TodayCmd) Run(deps *Dependencies) error {
	entries, err := deps.Articles.SummariesForDay(deps.Ctx, time.Now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries created today.")
		return nil
	}

	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s\n%s\n%s\n\n", title, entry.URL, entry.Summary)
	}

	return nil
}
