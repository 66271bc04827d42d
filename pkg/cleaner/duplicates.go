// pkg/cleaner/duplicates.go
package cleaner

import (
	"fmt"
	"strings"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// detectDuplicateRows counts rows whose full cell tuple matches an
// earlier row and logs the count. Detection only: the row count is
// invariant across the pipeline, so duplicates are never dropped.
func (tc *TableCleaner) detectDuplicateRows(t *model.Table, report *model.CleaningReport) error {
	seen := make(map[string]struct{}, t.RowCount())
	duplicates := 0

	for row := 0; row < t.RowCount(); row++ {
		key := rowKey(t, row)
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
	}

	if duplicates > 0 {
		report.Append(model.CleaningAction{
			Stage:  StageDuplicateRows,
			Detail: fmt.Sprintf("found %d duplicate rows", duplicates),
		})
	}

	return nil
}

// rowKey builds a comparison key from the decoded cells of one row.
// The unit separator keeps adjacent cells from colliding.
func rowKey(t *model.Table, row int) string {
	var b strings.Builder
	for i := range t.Columns {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		if t.Columns[i].IsMissing(row) {
			b.WriteByte(0x00)
			continue
		}
		b.WriteString(model.FormatCell(t.Columns[i].Value(row)))
	}
	return b.String()
}
