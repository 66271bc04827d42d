package cleaner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

func TestDowncastCategoricals(t *testing.T) {
	tc := newTestCleaner(t, DefaultOptions())

	// 3 distinct values across 1000 rows
	cells := make([]interface{}, 1000)
	levels := []string{"blue", "green", "red"}
	for i := range cells {
		cells[i] = levels[i%3]
	}

	table := mustTable(t,
		model.Column{Name: "color", Kind: model.KindText, Cells: cells},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.downcastCategoricals(table, report))

	col := &table.Columns[0]
	assert.Equal(t, model.KindCategorical, col.Kind)
	assert.Equal(t, []string{"blue", "green", "red"}, col.Levels)

	// decoded values are identical to the originals
	for i := 0; i < col.Len(); i++ {
		assert.Equal(t, levels[i%3], col.Value(i))
	}

	actions := report.ActionsForStage(StageCategorical)
	require.Len(t, actions, 1)
	assert.Equal(t, "color", actions[0].Column)
	assert.Equal(t, "downcast text to categorical (cardinality 3)", actions[0].Detail)
}

func TestDowncastSkipsWideColumns(t *testing.T) {
	tc := newTestCleaner(t, DefaultOptions())

	// 21 distinct values is just over the default threshold of 20
	cells := make([]interface{}, 21)
	for i := range cells {
		cells[i] = fmt.Sprintf("value_%02d", i)
	}

	table := mustTable(t,
		model.Column{Name: "wide", Kind: model.KindText, Cells: cells},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.downcastCategoricals(table, report))

	assert.Equal(t, model.KindText, table.Columns[0].Kind)
	assert.Empty(t, report.Actions)
}

func TestDowncastSkipsNumericColumns(t *testing.T) {
	tc := newTestCleaner(t, DefaultOptions())

	table := mustTable(t,
		model.Column{Name: "n", Kind: model.KindNumeric, Cells: []interface{}{1.0, 1.0, 2.0}},
	)

	report := &model.CleaningReport{}
	require.NoError(t, tc.downcastCategoricals(table, report))

	assert.Equal(t, model.KindNumeric, table.Columns[0].Kind)
	assert.Empty(t, report.Actions)
}
