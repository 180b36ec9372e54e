package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/vessel-labs/vesselfake/internal/record"
)

// DefaultBatchSize is the number of rows per parameterized INSERT.
const DefaultBatchSize = 1000

// Execer is the slice of the connection the writer needs; *sqlx.Conn and
// *sqlx.DB both satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Writer flushes uniform-shape records to a table in batches.
type Writer struct {
	exec      Execer
	batchSize int
}

func NewWriter(exec Execer, batchSize int) *Writer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Writer{exec: exec, batchSize: batchSize}
}

// BatchInsert writes records to table in input order, one parameterized
// multi-row INSERT per batch, and returns the number of rows written.
// Every 10,000 cumulative rows it prints a progress notice. Database
// errors propagate unmodified; an empty input touches nothing.
func (w *Writer) BatchInsert(ctx context.Context, table string, records []*record.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	if err := record.SameShape(records); err != nil {
		return 0, fmt.Errorf("refusing to insert into %s: %w", table, err)
	}

	columns := records[0].Keys()
	total := 0

	for i := 0; i < len(records); i += w.batchSize {
		end := i + w.batchSize
		if end > len(records) {
			end = len(records)
		}

		builder := squirrel.Insert(table).Columns(columns...)
		for _, rec := range records[i:end] {
			builder = builder.Values(rec.Values(columns)...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return total, fmt.Errorf("failed to build insert for %s: %w", table, err)
		}

		if _, err := w.exec.ExecContext(ctx, query, args...); err != nil {
			return total, err
		}

		total += end - i
		if total%10000 == 0 {
			color.Cyan("   ... %d records inserted", total)
		}
	}

	return total, nil
}

// TruncateTables empties each table in order. Per-table failures (a
// missing table, say) are reported and skipped so the remaining tables
// still get truncated.
func TruncateTables(ctx context.Context, exec Execer, tables []string) {
	for _, table := range tables {
		if _, err := exec.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE `%s`", table)); err != nil {
			color.Yellow("   ⚠ %s: %v", table, err)
			continue
		}
		color.Green("   ✓ %s", table)
	}
}
