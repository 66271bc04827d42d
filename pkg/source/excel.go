// pkg/source/excel.go
package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// ExcelSource loads a table from one sheet of an .xlsx workbook
type ExcelSource struct {
	path   string
	sheet  string
	logger *zap.Logger
}

// NewExcelSource creates an Excel source. An empty sheet name selects
// the workbook's first sheet.
func NewExcelSource(path, sheet string, logger *zap.Logger) *ExcelSource {
	return &ExcelSource{path: path, sheet: sheet, logger: logger}
}

// Load reads the sheet into a table. The first row is the header row.
func (s *ExcelSource) Load(ctx context.Context) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	table, err := buildTable(rows[0], rows[1:])
	if err != nil {
		return nil, fmt.Errorf("failed to build table from sheet %q: %w", sheet, err)
	}

	s.logger.Info("Loaded Excel source",
		zap.String("path", s.path),
		zap.String("sheet", sheet),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", table.ColumnCount()))

	return table, nil
}
