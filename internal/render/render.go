package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

// Result is a set of rows ready to print.
type Result struct {
	Table   string
	Fields  []schema.Field
	Rows    []data.Row
	Message string
}

// TableResult snapshots every row of t.
func TableResult(t *schema.Table) *Result {
	return &Result{
		Table:  t.Name(),
		Fields: t.Schema(),
		Rows:   t.SelectAll(),
	}
}

// RowsResult wraps the rows of a scan over t.
func RowsResult(t *schema.Table, rows []data.Row) *Result {
	return &Result{
		Table:  t.Name(),
		Fields: t.Schema(),
		Rows:   rows,
	}
}

// Summary describes the result size, e.g. "users: 1,204 rows".
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %s %s", r.Table,
		humanize.Comma(int64(len(r.Rows))),
		english.PluralWord(len(r.Rows), "row", ""))
}

// PrintResult writes res as an aligned text table.
func PrintResult(w io.Writer, res *Result) error {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
	fmt.Fprintln(w, res.Summary())

	if len(res.Fields) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header with type
	for i, f := range res.Fields {
		fmt.Fprintf(tw, "%s (%s)", f.Name, f.Type)
		if i < len(res.Fields)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Separator
	for i := range res.Fields {
		fmt.Fprintf(tw, "---")
		if i < len(res.Fields)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Rows
	for _, row := range res.Rows {
		for i, f := range res.Fields {
			val, ok := row.Get(f.Name)
			if !ok {
				// rows inserted before the field was added
				fmt.Fprintf(tw, "-")
			} else {
				fmt.Fprintf(tw, "%v", val)
			}
			if i < len(res.Fields)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
