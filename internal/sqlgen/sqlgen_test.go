package sqlgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-labs/vesselfake/internal/record"
)

func TestInsertEmptyInput(t *testing.T) {
	assert.Equal(t, "", Insert("catalog_items", nil))
	assert.Equal(t, "", Insert("catalog_items", []*record.Record{}))
}

func TestInsertRendersLiterals(t *testing.T) {
	records := []*record.Record{
		record.New().Set("id", 1).Set("name", "O'Brien & Sons").Set("notes", nil).Set("price", 19.5),
		record.New().Set("id", 2).Set("name", "Plain").Set("notes", "ok").Set("price", 3),
	}

	got := Insert("catalog_items", records)
	want := "INSERT INTO `catalog_items` (`id`, `name`, `notes`, `price`) VALUES\n" +
		"(1, 'O''Brien & Sons', NULL, 19.5),\n" +
		"(2, 'Plain', 'ok', 3);"
	assert.Equal(t, want, got)
}

func TestInsertQuoteDoublingOnly(t *testing.T) {
	records := []*record.Record{
		record.New().Set("value", `it's a backslash \ test`),
	}
	got := Insert("t", records)
	assert.Contains(t, got, `'it''s a backslash \ test'`)
}

func countRows(statement string) int {
	rows := 0
	for _, line := range strings.Split(statement, "\n") {
		if strings.HasPrefix(line, "(") {
			rows++
		}
	}
	return rows
}

func TestInsertBatchesAtOneThousandRows(t *testing.T) {
	const n = 2500
	records := make([]*record.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, record.New().Set("id", i).Set("slug", fmt.Sprintf("row-%d", i)))
	}

	out := Insert("catalog_terms", records)
	statements := strings.Split(out, "\n\n")
	require.Len(t, statements, 3) // ceil(2500/1000)

	total := 0
	for i, stmt := range statements {
		assert.True(t, strings.HasPrefix(stmt, "INSERT INTO `catalog_terms` (`id`, `slug`) VALUES\n"))
		assert.True(t, strings.HasSuffix(stmt, ";"))
		rows := countRows(stmt)
		if i < 2 {
			assert.Equal(t, BatchSize, rows)
		} else {
			assert.Equal(t, 500, rows)
		}
		total += rows
	}
	assert.Equal(t, n, total)
}

func TestInsertExactBatchBoundary(t *testing.T) {
	records := make([]*record.Record, 0, BatchSize)
	for i := 0; i < BatchSize; i++ {
		records = append(records, record.New().Set("id", i))
	}
	out := Insert("t", records)
	assert.Len(t, strings.Split(out, "\n\n"), 1)
	assert.Equal(t, BatchSize, countRows(out))
}
