// pkg/model/table.go
package model

import (
	"fmt"
	"strconv"
)

// Kind identifies the declared type of a column
type Kind int

const (
	// KindNumeric columns hold float64 cells
	KindNumeric Kind = iota
	// KindText columns hold free-form string cells
	KindText
	// KindCategorical columns hold integer codes into a finite level set
	KindCategorical
)

// String returns the label used in logs and reports
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindCategorical:
		return "categorical"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Column represents a single named column of typed cells.
// A nil cell is the missing marker. Cell storage depends on Kind:
// float64 for numeric, string for text, and int level codes for
// categorical columns (Levels holds the decoded values).
type Column struct {
	Name   string
	Kind   Kind
	Cells  []interface{}
	Levels []string // populated for categorical columns only
}

// Len returns the number of cells in the column
func (c *Column) Len() int {
	return len(c.Cells)
}

// IsMissing reports whether the cell at index i is the missing marker
func (c *Column) IsMissing(i int) bool {
	return c.Cells[i] == nil
}

// Value returns the decoded cell at index i.
// Categorical codes are decoded to their level string; other kinds
// return the stored cell unchanged. Missing cells return nil.
func (c *Column) Value(i int) interface{} {
	cell := c.Cells[i]
	if cell == nil {
		return nil
	}
	if c.Kind == KindCategorical {
		if code, ok := cell.(int); ok && code >= 0 && code < len(c.Levels) {
			return c.Levels[code]
		}
	}
	return cell
}

// LevelCode returns the code for a level value in a categorical column
func (c *Column) LevelCode(value string) (int, bool) {
	for i, level := range c.Levels {
		if level == value {
			return i, true
		}
	}
	return 0, false
}

// MissingCount returns the number of missing cells
func (c *Column) MissingCount() int {
	count := 0
	for i := range c.Cells {
		if c.Cells[i] == nil {
			count++
		}
	}
	return count
}

// Cardinality returns the number of distinct non-missing values
func (c *Column) Cardinality() int {
	distinct := make(map[interface{}]struct{})
	for i := range c.Cells {
		if c.Cells[i] == nil {
			continue
		}
		distinct[c.Value(i)] = struct{}{}
	}
	return len(distinct)
}

// Clone returns a deep copy of the column
func (c *Column) Clone() Column {
	clone := Column{
		Name: c.Name,
		Kind: c.Kind,
	}
	if c.Cells != nil {
		clone.Cells = make([]interface{}, len(c.Cells))
		copy(clone.Cells, c.Cells)
	}
	if c.Levels != nil {
		clone.Levels = make([]string, len(c.Levels))
		copy(clone.Levels, c.Levels)
	}
	return clone
}

// Profile returns the derived descriptor for the column
func (c *Column) Profile() ColumnProfile {
	return ColumnProfile{
		Name:         c.Name,
		Kind:         c.Kind,
		Cardinality:  c.Cardinality(),
		MissingCount: c.MissingCount(),
	}
}

// ColumnProfile is a derived, never stored, description of a column
type ColumnProfile struct {
	Name         string
	Kind         Kind
	Cardinality  int
	MissingCount int
}

// Table is an ordered set of equally sized named columns
type Table struct {
	Columns []Column
}

// NewTable builds a table from columns, validating that all columns
// share one length and that column names are unique
func NewTable(columns ...Column) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for i := range columns {
		if columns[i].Name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := seen[columns[i].Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", columns[i].Name)
		}
		seen[columns[i].Name] = struct{}{}

		if i > 0 && columns[i].Len() != columns[0].Len() {
			return nil, fmt.Errorf("column %q has %d cells, expected %d",
				columns[i].Name, columns[i].Len(), columns[0].Len())
		}
	}

	return &Table{Columns: columns}, nil
}

// RowCount returns the number of rows in the table
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// ColumnCount returns the number of columns in the table
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Column returns the column with the given name, or nil if absent
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	columns := make([]Column, len(t.Columns))
	for i := range t.Columns {
		columns[i] = t.Columns[i].Clone()
	}
	return &Table{Columns: columns}
}

// FormatCell renders a decoded cell value for logs and flat-file output
func FormatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
