// pkg/cleaner/categorical.go
package cleaner

import (
	"fmt"
	"sort"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// downcastCategoricals converts every text column whose cardinality is
// at or below the configured maximum to a categorical representation:
// sorted distinct levels plus integer codes per cell. Decoded values
// are identical to the originals.
func (tc *TableCleaner) downcastCategoricals(t *model.Table, report *model.CleaningReport) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Kind != model.KindText {
			continue
		}

		cardinality := col.Cardinality()
		if cardinality > tc.opts.CategoricalMaxCardinality {
			continue
		}

		levels := distinctStrings(col)
		codes := make(map[string]int, len(levels))
		for code, level := range levels {
			codes[level] = code
		}

		for j := range col.Cells {
			cell, ok := col.Cells[j].(string)
			if !ok {
				continue
			}
			col.Cells[j] = codes[cell]
		}
		col.Kind = model.KindCategorical
		col.Levels = levels

		report.Append(model.CleaningAction{
			Stage:  StageCategorical,
			Column: col.Name,
			Detail: fmt.Sprintf("downcast %s to %s (cardinality %d)",
				model.KindText, model.KindCategorical, cardinality),
		})
	}

	return nil
}

// distinctStrings returns the sorted distinct non-missing values of a
// text column
func distinctStrings(col *model.Column) []string {
	seen := make(map[string]struct{})
	for i := range col.Cells {
		if s, ok := col.Cells[i].(string); ok {
			seen[s] = struct{}{}
		}
	}
	levels := make([]string, 0, len(seen))
	for s := range seen {
		levels = append(levels, s)
	}
	sort.Strings(levels)
	return levels
}
