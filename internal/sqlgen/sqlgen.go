// Package sqlgen renders uniform-shape records as batched MySQL INSERT
// statements.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/vessel-labs/vesselfake/internal/record"
)

// BatchSize is the maximum number of rows per INSERT statement.
const BatchSize = 1000

// Insert renders records as one or more INSERT statements for table,
// at most BatchSize rows each, joined with a blank line. Columns are
// taken from the first record; callers must pass same-shape records or
// the output is malformed. An empty input yields an empty string.
func Insert(table string, records []*record.Record) string {
	if len(records) == 0 {
		return ""
	}

	columns := records[0].Keys()
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = "`" + col + "`"
	}
	colStr := strings.Join(quoted, ", ")

	rows := make([]string, 0, len(records))
	for _, rec := range records {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = formatValue(rec.Value(col))
		}
		rows = append(rows, "("+strings.Join(values, ", ")+")")
	}

	var statements []string
	for i := 0; i < len(rows); i += BatchSize {
		end := i + BatchSize
		if end > len(rows) {
			end = len(rows)
		}
		statements = append(statements,
			fmt.Sprintf("INSERT INTO `%s` (%s) VALUES\n%s;", table, colStr, strings.Join(rows[i:end], ",\n")))
	}

	return strings.Join(statements, "\n\n")
}

// formatValue renders one scalar as a SQL literal: NULL for nil, bare
// digits for numbers, otherwise a single-quoted string with embedded
// quotes doubled.
func formatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", v)
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", v), "'", "''") + "'"
	}
}
