// pkg/cleaner/strings.go
package cleaner

import (
	"fmt"
	"strings"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// normalizeStringValues trims and lowercases every cell of every text
// column. Missing cells are never touched. One action is logged per
// column with at least one changed cell, so a second pass over already
// clean data records nothing.
func (tc *TableCleaner) normalizeStringValues(t *model.Table, report *model.CleaningReport) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Kind != model.KindText {
			continue
		}

		changed := 0
		for j := range col.Cells {
			cell, ok := col.Cells[j].(string)
			if !ok {
				continue
			}
			normalized := strings.ToLower(strings.TrimSpace(cell))
			if normalized != cell {
				col.Cells[j] = normalized
				changed++
			}
		}

		if changed > 0 {
			report.Append(model.CleaningAction{
				Stage:  StageStringValues,
				Column: col.Name,
				Detail: fmt.Sprintf("trimmed and lowercased %d values", changed),
			})
		}
	}

	return nil
}
