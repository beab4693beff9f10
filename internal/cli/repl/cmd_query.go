package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sqlward/sqlward"
	"github.com/sqlward/sqlward/internal/cli/styled"
	"github.com/sqlward/sqlward/internal/util/numutil"
)

// cmdQuery executes a free-form statement and renders its result.
func cmdQuery(r *Repl, input string) {
	renderResult(r.svc.Run(r.ctx, input, nil))
}

// cmdTables lists the user tables of the connected database.
func cmdTables(r *Repl) {
	query, bindings := r.svc.Dialect().TablesStatement()
	renderResult(r.svc.Run(r.ctx, query, bindings))
}

// cmdColumns lists the columns of a table in schema order.
func cmdColumns(r *Repl, name string) {
	columns, err := r.svc.Columns(r.ctx, name)
	if err != nil {
		styled.ErrorColor().Println(err)
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Column"})
	for _, column := range columns {
		tw.AppendRow(table.Row{column})
	}
	fmt.Println(tw.Render())
}

// cmdCount prints the number of rows in a table.
func cmdCount(r *Repl, name string) {
	res := r.svc.Select(r.ctx, name, "", nil, "COUNT(*) AS n")
	if res.Failed() {
		styled.ErrorColor().Println(res.Err)
		return
	}

	count := 0
	if len(res.Rows) == 1 {
		if n, ok := res.Rows[0]["n"].(int64); ok {
			count = int(n)
		}
	}
	fmt.Printf("%s rows\n", numutil.IntWithCommas(count))
}

// renderResult renders a Result shaped by its statement kind.
func renderResult(res sqlward.Result) {
	tw := styled.NewTableWriter()

	switch {
	case res.Failed():
		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{res.Err.Error()})

	case res.Kind == sqlward.KindInsert:
		tw.AppendHeader(table.Row{"-", "Last Insert ID"})
		tw.AppendRow(table.Row{"OK", res.LastInsertID})

	case res.Kind == sqlward.KindUpdate || res.Kind == sqlward.KindDelete:
		tw.AppendHeader(table.Row{"-", "Rows Affected"})
		tw.AppendRow(table.Row{"OK", res.RowsAffected})

	default:
		header := table.Row{}
		for _, column := range res.Columns {
			header = append(header, column)
		}
		tw.AppendHeader(header)

		for _, row := range res.Rows {
			values := table.Row{}
			for _, column := range res.Columns {
				values = append(values, row[column])
			}
			tw.AppendRow(values)
		}
	}

	fmt.Println(tw.Render())

	if !res.Failed() && res.Rows != nil {
		styled.DimmedColor().Printf("%s rows\n", numutil.IntWithCommas(len(res.Rows)))
	}
}
