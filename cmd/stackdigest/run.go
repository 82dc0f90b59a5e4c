package main

import (
	"fmt"

	"stackdigest"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	res, err := deps.Pipeline.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d articles, summarized %d, digest sent: %t (%.1fs)\n",
		res.Scraped, res.Summarized, res.Notified, res.Elapsed.Seconds())
	return nil
}

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	recs, err := deps.Runs.RecentRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet. Use 'stackdigest run' to start one.")
		return nil
	}

	for _, rec := range recs {
		status := "ok"
		if rec.Error != "" {
			status = rec.Error
		}
		fmt.Fprintf(deps.Stdout, "%s  scraped=%d summarized=%d sent=%t %.1fs  %s\n",
			rec.RunDate.Format("2006-01-02"), rec.Scraped, rec.Summarized,
			rec.Notified, rec.ElapsedSeconds, status)
	}

	return nil
}
