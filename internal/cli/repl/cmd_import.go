package repl

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sqlward/sqlward/internal/cli/styled"
	"github.com/sqlward/sqlward/internal/util/numutil"
)

// cmdImport bulk inserts a CSV file into a table. The first CSV row is the
// header naming the target columns; header names that are not real columns
// of the table are dropped by the field filter like any other insert.
func cmdImport(r *Repl, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: .import [file] [table_name]")
		return
	}
	path, tableName := args[0], args[1]

	file, err := os.Open(path)
	if err != nil {
		styled.ErrorColor().Println(err)
		return
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		styled.ErrorColor().Printf("failed to read %s: %v\n", path, err)
		return
	}
	if len(records) < 2 {
		fmt.Println("Nothing to import, the file needs a header row and at least one data row")
		return
	}

	header := records[0]
	rows := records[1:]

	bar := progressbar.Default(int64(len(rows)), "importing")
	imported, failed := 0, 0
	for _, record := range rows {
		fields := map[string]any{}
		for i, column := range header {
			if i < len(record) {
				fields[column] = record[i]
			}
		}

		if res := r.svc.Insert(r.ctx, tableName, fields); res.Failed() {
			failed++
		} else {
			imported++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf(
		"Imported %s rows into %s\n",
		numutil.IntWithCommas(imported), tableName,
	)
	if failed > 0 {
		styled.ErrorColor().Printf("%s rows failed, check the statement log for details\n",
			numutil.IntWithCommas(failed))
	}
}
