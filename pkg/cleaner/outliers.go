// pkg/cleaner/outliers.go
package cleaner

import (
	"fmt"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// detectOutliers counts, per numeric column, the values lying strictly
// outside [Q1 - m*IQR, Q3 + m*IQR] where m is the configured
// multiplier. Quartiles use linear interpolation. Columns without
// outliers are not logged. Detection only, values are never altered.
func (tc *TableCleaner) detectOutliers(t *model.Table, report *model.CleaningReport) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Kind != model.KindNumeric {
			continue
		}

		values := numericValues(col)
		if len(values) == 0 {
			continue
		}

		q1 := quantile(values, 0.25)
		q3 := quantile(values, 0.75)
		iqr := q3 - q1
		lower := q1 - tc.opts.OutlierMultiplier*iqr
		upper := q3 + tc.opts.OutlierMultiplier*iqr

		outliers := 0
		for _, v := range values {
			if v < lower || v > upper {
				outliers++
			}
		}

		if outliers > 0 {
			report.Append(model.CleaningAction{
				Stage:  StageOutliers,
				Column: col.Name,
				Detail: fmt.Sprintf("%d potential outliers outside [%s, %s]",
					outliers, model.FormatCell(lower), model.FormatCell(upper)),
			})
		}
	}

	return nil
}
