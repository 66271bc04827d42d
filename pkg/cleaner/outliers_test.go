package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

func TestDetectOutliersIQR(t *testing.T) {
	tc := newTestCleaner(t, DefaultOptions())

	table := mustTable(t,
		model.Column{Name: "value", Kind: model.KindNumeric, Cells: []interface{}{
			1.0, 2.0, 3.0, 4.0, 5.0, 100.0,
		}},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.detectOutliers(table, report))

	// Q1=2.25, Q3=4.75, IQR=2.5, bounds [-1.5, 8.5]: only 100 is out
	actions := report.ActionsForStage(StageOutliers)
	require.Len(t, actions, 1)
	assert.Equal(t, "value", actions[0].Column)
	assert.Equal(t, "1 potential outliers outside [-1.5, 8.5]", actions[0].Detail)

	// detection never mutates
	assert.Equal(t, 100.0, table.Columns[0].Cells[5])
}

func TestDetectOutliersSkipsCleanColumns(t *testing.T) {
	tc := newTestCleaner(t, DefaultOptions())

	table := mustTable(t,
		model.Column{Name: "steady", Kind: model.KindNumeric, Cells: []interface{}{1.0, 2.0, 3.0, 4.0}},
		model.Column{Name: "label", Kind: model.KindText, Cells: []interface{}{"a", "b", "c", "d"}},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.detectOutliers(table, report))

	assert.Empty(t, report.Actions)
}

func TestDetectOutliersCustomMultiplier(t *testing.T) {
	opts := DefaultOptions()
	opts.OutlierMultiplier = 50
	tc := newTestCleaner(t, opts)

	table := mustTable(t,
		model.Column{Name: "value", Kind: model.KindNumeric, Cells: []interface{}{
			1.0, 2.0, 3.0, 4.0, 5.0, 100.0,
		}},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.detectOutliers(table, report))

	// wide bounds swallow the spike
	assert.Empty(t, report.Actions)
}
