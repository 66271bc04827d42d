// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/David-Botos/table-cleaner/pkg/model"
)

// Stage names in pipeline order. Report grouping follows this order
// because stages append actions sequentially.
const (
	StageColumnNames   = "column_names"
	StageMissingValues = "missing_values"
	StageStringValues  = "string_values"
	StageDuplicateRows = "duplicate_rows"
	StageCardinality   = "cardinality"
	StageOutliers      = "outliers"
	StageCategorical   = "categorical"
)

// NumericStrategy selects how missing numeric cells are filled
type NumericStrategy string

const (
	// StrategyMedian fills with the column median
	StrategyMedian NumericStrategy = "median"
	// StrategyMean fills with the column mean
	StrategyMean NumericStrategy = "mean"
	// StrategyConstant fills with Options.NumericFill
	StrategyConstant NumericStrategy = "constant"
)

// Options configures a cleaning run. It is passed explicitly so
// repeated invocations with different settings never interfere.
type Options struct {
	// Fraction of rows above which a column is flagged high-cardinality
	HighCardinalityThreshold float64
	// Maximum distinct values for categorical downcast eligibility
	CategoricalMaxCardinality int
	// IQR multiplier for outlier bounds
	OutlierMultiplier float64
	// Strategy for imputing missing numeric cells
	NumericStrategy NumericStrategy
	// Fill value used when NumericStrategy is StrategyConstant
	NumericFill float64
	// String placeholders treated as missing values in text cells
	MissingTokens []string
}

// DefaultOptions returns the default cleaning configuration
func DefaultOptions() Options {
	return Options{
		HighCardinalityThreshold:  0.9,
		CategoricalMaxCardinality: 20,
		OutlierMultiplier:         1.5,
		NumericStrategy:           StrategyMedian,
		MissingTokens:             model.DefaultMissingTokens,
	}
}

// Validate ensures the options are usable
func (o Options) Validate() error {
	if o.HighCardinalityThreshold <= 0 || o.HighCardinalityThreshold > 1 {
		return errors.New("high cardinality threshold must be in (0, 1]")
	}
	if o.CategoricalMaxCardinality < 1 {
		return errors.New("categorical max cardinality must be positive")
	}
	if o.OutlierMultiplier <= 0 {
		return errors.New("outlier multiplier must be positive")
	}
	switch o.NumericStrategy {
	case StrategyMedian, StrategyMean, StrategyConstant:
	default:
		return fmt.Errorf("unknown numeric strategy %q", o.NumericStrategy)
	}
	return nil
}

// TableCleaner runs the sequential cleaning pipeline over one table
type TableCleaner struct {
	logger *zap.Logger
	opts   Options
}

// NewTableCleaner creates a TableCleaner with the given options
func NewTableCleaner(logger *zap.Logger, opts Options) (*TableCleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cleaner options: %w", err)
	}
	return &TableCleaner{logger: logger, opts: opts}, nil
}

// stageFunc is one pipeline stage: it reads and mutates the table and
// appends to the shared report
type stageFunc func(t *model.Table, report *model.CleaningReport) error

// Clean applies the full pipeline to a table and returns the cleaned
// copy together with the report of actions taken. The input table is
// never mutated; all work happens on a deep copy. Any stage error
// aborts the run and no partial report is returned.
func (tc *TableCleaner) Clean(table *model.Table) (*model.Table, *model.CleaningReport, error) {
	if table == nil {
		return nil, nil, errors.New("table cannot be nil")
	}
	if table.RowCount() == 0 || table.ColumnCount() == 0 {
		return nil, nil, &EmptyTableError{Rows: table.RowCount(), Columns: table.ColumnCount()}
	}

	logger := tc.logger.With(zap.String("run_id", uuid.New().String()))
	logger.Info("Starting cleaning run",
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", table.ColumnCount()))

	cleaned := table.Clone()
	report := &model.CleaningReport{}

	stages := []struct {
		name string
		run  stageFunc
	}{
		{StageColumnNames, tc.normalizeColumnNames},
		{StageMissingValues, tc.imputeMissingValues},
		{StageStringValues, tc.normalizeStringValues},
		{StageDuplicateRows, tc.detectDuplicateRows},
		{StageCardinality, tc.detectCardinality},
		{StageOutliers, tc.detectOutliers},
		{StageCategorical, tc.downcastCategoricals},
	}

	for _, stage := range stages {
		before := len(report.Actions)
		if err := stage.run(cleaned, report); err != nil {
			logger.Error("Cleaning stage failed",
				zap.String("stage", stage.name),
				zap.Error(err))
			return nil, nil, fmt.Errorf("stage %s: %w", stage.name, err)
		}
		logger.Debug("Cleaning stage completed",
			zap.String("stage", stage.name),
			zap.Int("actions", len(report.Actions)-before))
	}

	logger.Info("Cleaning run completed",
		zap.Int("rows", cleaned.RowCount()),
		zap.Int("actions", len(report.Actions)))

	return cleaned, report, nil
}
