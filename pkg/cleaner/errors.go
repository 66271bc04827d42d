// pkg/cleaner/errors.go
package cleaner

import "fmt"

// EmptyTableError indicates the table has zero rows or zero columns.
// The pipeline fails fast before any stage runs.
type EmptyTableError struct {
	Rows    int
	Columns int
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("empty table: %d rows, %d columns", e.Rows, e.Columns)
}

// InsufficientDataError indicates a column is entirely missing, which
// leaves median and mode undefined for imputation
type InsufficientDataError struct {
	Column string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("column %q is entirely missing: cannot impute", e.Column)
}

// DuplicateColumnNameError indicates that name normalization mapped
// two columns onto the same name
type DuplicateColumnNameError struct {
	Name   string // the normalized name both columns collapsed to
	First  string // original name of the first column
	Second string // original name of the second column
}

func (e *DuplicateColumnNameError) Error() string {
	return fmt.Sprintf("columns %q and %q both normalize to %q",
		e.First, e.Second, e.Name)
}
