// pkg/source/csv.go
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// CSVSource loads a table from a delimited text file
type CSVSource struct {
	path   string
	comma  rune
	logger *zap.Logger
}

// NewCSVSource creates a CSV source for the given file path
func NewCSVSource(path string, logger *zap.Logger) *CSVSource {
	return &CSVSource{path: path, comma: ',', logger: logger}
}

// WithDelimiter sets the field delimiter and returns the source
func (s *CSVSource) WithDelimiter(comma rune) *CSVSource {
	s.comma = comma
	return s
}

// Load reads the file into a table. The first record is the header
// row; remaining records are data rows.
func (s *CSVSource) Load(ctx context.Context) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	table, err := s.read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	s.logger.Info("Loaded CSV source",
		zap.String("path", s.path),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", table.ColumnCount()))

	return table, nil
}

func (s *CSVSource) read(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.comma
	reader.FieldsPerRecord = -1 // ragged rows pad out to missing cells

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	return buildTable(records[0], records[1:])
}

// WriteCSV writes a table as delimited text, decoding categorical
// cells back to their level values
func WriteCSV(w io.Writer, table *model.Table) error {
	writer := csv.NewWriter(w)

	header := make([]string, table.ColumnCount())
	for j := range table.Columns {
		header[j] = table.Columns[j].Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, table.ColumnCount())
	for i := 0; i < table.RowCount(); i++ {
		for j := range table.Columns {
			record[j] = model.FormatCell(table.Columns[j].Value(i))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
