package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr bool
	}{
		{
			name: "valid table",
			columns: []Column{
				{Name: "a", Kind: KindText, Cells: []interface{}{"x", "y"}},
				{Name: "b", Kind: KindNumeric, Cells: []interface{}{1.0, 2.0}},
			},
		},
		{
			name: "mismatched lengths",
			columns: []Column{
				{Name: "a", Kind: KindText, Cells: []interface{}{"x", "y"}},
				{Name: "b", Kind: KindNumeric, Cells: []interface{}{1.0}},
			},
			wantErr: true,
		},
		{
			name: "duplicate names",
			columns: []Column{
				{Name: "a", Kind: KindText, Cells: []interface{}{"x"}},
				{Name: "a", Kind: KindText, Cells: []interface{}{"y"}},
			},
			wantErr: true,
		},
		{
			name: "empty name",
			columns: []Column{
				{Name: "", Kind: KindText, Cells: []interface{}{"x"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.columns...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.columns), table.ColumnCount())
		})
	}
}

func TestColumnProfile(t *testing.T) {
	col := Column{
		Name: "status",
		Kind: KindText,
		Cells: []interface{}{
			"on", "off", nil, "on", nil,
		},
	}

	profile := col.Profile()
	assert.Equal(t, "status", profile.Name)
	assert.Equal(t, KindText, profile.Kind)
	assert.Equal(t, 2, profile.Cardinality)
	assert.Equal(t, 2, profile.MissingCount)
}

func TestCategoricalDecoding(t *testing.T) {
	col := Column{
		Name:   "color",
		Kind:   KindCategorical,
		Cells:  []interface{}{1, 0, nil, 1},
		Levels: []string{"blue", "red"},
	}

	assert.Equal(t, "red", col.Value(0))
	assert.Equal(t, "blue", col.Value(1))
	assert.Nil(t, col.Value(2))
	assert.Equal(t, 2, col.Cardinality())

	code, ok := col.LevelCode("red")
	require.True(t, ok)
	assert.Equal(t, 1, code)

	_, ok = col.LevelCode("green")
	assert.False(t, ok)
}

func TestTableClone(t *testing.T) {
	table, err := NewTable(
		Column{Name: "a", Kind: KindText, Cells: []interface{}{"x", "y"}},
	)
	require.NoError(t, err)

	clone := table.Clone()
	clone.Columns[0].Name = "renamed"
	clone.Columns[0].Cells[0] = "changed"

	assert.Equal(t, "a", table.Columns[0].Name)
	assert.Equal(t, "x", table.Columns[0].Cells[0])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "numeric", KindNumeric.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "categorical", KindCategorical.String())
}

func TestIsMissingToken(t *testing.T) {
	tokens := DefaultMissingTokens

	tests := []struct {
		value string
		want  bool
	}{
		{"n/a", true},
		{"N/A", true},
		{" null ", true},
		{"", true},
		{"-", true},
		{"nan", true},
		{"0", false},
		{"value", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMissingToken(tt.value, tokens))
		})
	}
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", FormatCell(nil))
	assert.Equal(t, "2.5", FormatCell(2.5))
	assert.Equal(t, "3", FormatCell(3.0))
	assert.Equal(t, "hello", FormatCell("hello"))
}
