// pkg/source/source.go
package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// Source loads a table from an external collaborator (flat file,
// spreadsheet, or database query).
type Source interface {
	// Load reads the source and produces an in-memory table with
	// column kinds resolved once at load time
	Load(ctx context.Context) (*model.Table, error)
}

// buildTable turns a header row plus string records into a table.
// A column becomes numeric when every cell that is not a missing
// token parses as a number; otherwise it stays text with its raw
// cells intact so the cleaner can log what it changes.
func buildTable(headers []string, records [][]string) (*model.Table, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("source has no header row")
	}

	columns := make([]model.Column, len(headers))
	for j, name := range headers {
		raw := make([]string, len(records))
		for i, record := range records {
			if j < len(record) {
				raw[i] = record[j]
			}
		}
		columns[j] = inferColumn(name, raw)
	}

	table, err := model.NewTable(columns...)
	if err != nil {
		return nil, fmt.Errorf("invalid source table: %w", err)
	}
	return table, nil
}

// inferColumn decides a column's kind from its raw string cells
func inferColumn(name string, raw []string) model.Column {
	numeric := false
	for _, v := range raw {
		if model.IsMissingToken(v, model.DefaultMissingTokens) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			numeric = false
			break
		}
		numeric = true
	}

	cells := make([]interface{}, len(raw))
	if numeric {
		for i, v := range raw {
			if model.IsMissingToken(v, model.DefaultMissingTokens) {
				continue
			}
			parsed, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
			cells[i] = parsed
		}
		return model.Column{Name: name, Kind: model.KindNumeric, Cells: cells}
	}

	for i, v := range raw {
		cells[i] = v
	}
	return model.Column{Name: name, Kind: model.KindText, Cells: cells}
}
