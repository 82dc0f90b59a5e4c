package main

import (
	"fmt"
	"strconv"

	"stackdigest"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, stackdigest.ArticleFilter{
		Search: c.Query,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles matching %q.\n", c.Query)
		return nil
	}

	rows := make([][]string, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, []string{
			strconv.FormatInt(article.ID, 10),
			truncate(article.Title, 50),
			truncate(article.URL, 60),
			article.ScrapedAt.Format("2006-01-02"),
			strconv.FormatBool(article.Processed),
		})
	}

	renderTable(deps.Stdout, []string{"ID", "Title", "URL", "Scraped", "Processed"}, rows)
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	articles, summaries, err := deps.Articles.Counts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	processed := false
	backlog, err := deps.Articles.FindArticles(deps.Ctx, stackdigest.ArticleFilter{Processed: &processed})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stackdigest.ErrorMessage(err))
		return err
	}

	renderTable(deps.Stdout, []string{"Metric", "Value"}, [][]string{
		{"articles", strconv.Itoa(articles)},
		{"summaries", strconv.Itoa(summaries)},
		{"backlog", strconv.Itoa(len(backlog))},
	})
	return nil
}
