// pkg/cleaner/impute.go
package cleaner

import (
	"fmt"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// imputeMissingValues converts configured missing tokens in text cells
// to the missing marker, then fills every missing cell: numeric
// columns with the configured statistic, text and categorical columns
// with the mode (lexicographically first value on a tie). A column
// that is entirely missing aborts the run.
func (tc *TableCleaner) imputeMissingValues(t *model.Table, report *model.CleaningReport) error {
	for i := range t.Columns {
		col := &t.Columns[i]

		if col.Kind == model.KindText {
			tc.markMissingTokens(col)
		}

		missing := col.MissingCount()
		if missing == 0 {
			continue
		}
		if missing == col.Len() {
			return &InsufficientDataError{Column: col.Name}
		}

		switch col.Kind {
		case model.KindNumeric:
			fill, statistic := tc.numericFill(col)
			for j := range col.Cells {
				if col.Cells[j] == nil {
					col.Cells[j] = fill
				}
			}
			report.Append(model.CleaningAction{
				Stage:  StageMissingValues,
				Column: col.Name,
				Detail: fmt.Sprintf("imputed %d missing values with %s %s",
					missing, statistic, model.FormatCell(fill)),
			})

		default:
			fill := modeOfColumn(col)
			for j := range col.Cells {
				if col.Cells[j] != nil {
					continue
				}
				if col.Kind == model.KindCategorical {
					code, ok := col.LevelCode(fill)
					if !ok {
						return fmt.Errorf("mode %q not found in levels of column %q", fill, col.Name)
					}
					col.Cells[j] = code
				} else {
					col.Cells[j] = fill
				}
			}
			report.Append(model.CleaningAction{
				Stage:  StageMissingValues,
				Column: col.Name,
				Detail: fmt.Sprintf("imputed %d missing values with mode %q", missing, fill),
			})
		}
	}

	return nil
}

// markMissingTokens replaces token cells ("n/a", "null", ...) with the
// missing marker so they are counted and imputed like real gaps
func (tc *TableCleaner) markMissingTokens(col *model.Column) {
	for j := range col.Cells {
		cell, ok := col.Cells[j].(string)
		if !ok {
			continue
		}
		if model.IsMissingToken(cell, tc.opts.MissingTokens) {
			col.Cells[j] = nil
		}
	}
}

// numericFill computes the fill value for a numeric column according
// to the configured strategy, returning the value and its label
func (tc *TableCleaner) numericFill(col *model.Column) (float64, string) {
	switch tc.opts.NumericStrategy {
	case StrategyMean:
		return mean(numericValues(col)), "mean"
	case StrategyConstant:
		return tc.opts.NumericFill, "constant"
	default:
		return median(numericValues(col)), "median"
	}
}

// numericValues collects the non-missing float64 cells of a column
func numericValues(col *model.Column) []float64 {
	values := make([]float64, 0, col.Len())
	for i := range col.Cells {
		if v, ok := col.Cells[i].(float64); ok {
			values = append(values, v)
		}
	}
	return values
}

// modeOfColumn computes the mode over the decoded non-missing values
// of a text or categorical column
func modeOfColumn(col *model.Column) string {
	values := make([]string, 0, col.Len())
	for i := range col.Cells {
		if col.Cells[i] == nil {
			continue
		}
		if s, ok := col.Value(i).(string); ok {
			values = append(values, s)
		}
	}
	return mode(values)
}
