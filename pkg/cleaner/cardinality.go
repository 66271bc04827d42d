// pkg/cleaner/cardinality.go
package cleaner

import (
	"fmt"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// detectCardinality flags constant columns (cardinality <= 1) and
// high-cardinality columns (distinct ratio above the configured
// threshold). Inspection only: no column is dropped or mutated.
func (tc *TableCleaner) detectCardinality(t *model.Table, report *model.CleaningReport) error {
	rows := t.RowCount()

	for i := range t.Columns {
		col := &t.Columns[i]
		cardinality := col.Cardinality()

		if cardinality <= 1 {
			report.Append(model.CleaningAction{
				Stage:  StageCardinality,
				Column: col.Name,
				Detail: fmt.Sprintf("constant column (cardinality %d), consider removing", cardinality),
			})
			continue
		}

		ratio := float64(cardinality) / float64(rows)
		if ratio > tc.opts.HighCardinalityThreshold {
			report.Append(model.CleaningAction{
				Stage:  StageCardinality,
				Column: col.Name,
				Detail: fmt.Sprintf("high cardinality: %d distinct values across %d rows", cardinality, rows),
			})
		}
	}

	return nil
}
