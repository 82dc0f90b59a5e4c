package main

import (
	"fmt"
	"strconv"

	"stackdigest"
)

// vettedTables is the set of tables the viewer will open. The table name is
// interpolated into queries, so anything outside this set is rejected.
var vettedTables = map[string]bool{
	"articles":       true,
	"summaries":      true,
	"execution_logs": true,
}

const sampleRows = 5

// Run executes the tables command.
func (c *TablesCmd) Run(deps *Dependencies) error {
	rows, err := deps.DB.QueryContext(deps.Ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		var count int
		if vettedTables[name] {
			if err := deps.DB.QueryRowContext(deps.Ctx,
				"SELECT COUNT(*) FROM "+name).Scan(&count); err != nil {
				return err
			}
		}
		out = append(out, []string{name, strconv.Itoa(count)})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	renderTable(deps.Stdout, []string{"Table", "Rows"}, out)
	return nil
}

// Run executes the table command.
func (c *TableCmd) Run(deps *Dependencies) error {
	if !vettedTables[c.Name] {
		return stackdigest.Errorf(stackdigest.EINVALID, "unknown table %q", c.Name)
	}

	cols, err := deps.DB.QueryContext(deps.Ctx, "PRAGMA table_info("+c.Name+")")
	if err != nil {
		return err
	}
	defer cols.Close()

	var schema [][]string
	for cols.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := cols.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return err
		}
		key := ""
		if pk != 0 {
			key = "PK"
		}
		schema = append(schema, []string{name, typ, key})
	}
	if err := cols.Err(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Schema for %s:\n", c.Name)
	renderTable(deps.Stdout, []string{"Column", "Type", "Key"}, schema)

	rows, err := deps.DB.QueryContext(deps.Ctx,
		fmt.Sprintf("SELECT * FROM %s ORDER BY 1 DESC LIMIT %d", c.Name, sampleRows))
	if err != nil {
		return err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return err
	}

	var sample [][]string
	for rows.Next() {
		values := make([]any, len(names))
		for i := range values {
			values[i] = new(any)
		}
		if err := rows.Scan(values...); err != nil {
			return err
		}
		row := make([]string, len(names))
		for i, v := range values {
			row[i] = truncate(formatValue(*v.(*any)), 60)
		}
		sample = append(sample, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(sample) == 0 {
		fmt.Fprintln(deps.Stdout, "\n(no rows)")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nLatest %d rows:\n", len(sample))
	renderTable(deps.Stdout, names, sample)
	return nil
}

// formatValue renders a scanned database value for display.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
