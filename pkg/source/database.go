// pkg/source/database.go
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/David-Botos/table-cleaner/pkg/config"
	"github.com/David-Botos/table-cleaner/pkg/model"
)

// DatabaseSource loads a table from the result set of a SQL query
type DatabaseSource struct {
	db           *sqlx.DB
	query        string
	queryTimeout time.Duration
	logger       *zap.Logger
}

// NewPostgresSource opens a PostgreSQL connection and wraps it as a
// table source for the given query
func NewPostgresSource(ctx context.Context, cfg *config.PostgresConfig, query string, logger *zap.Logger) (*DatabaseSource, error) {
	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database))

	db, err := open(ctx, "postgres", cfg.ConnectionString(),
		cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &DatabaseSource{
		db:           db,
		query:        query,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger.Named("postgres-source"),
	}, nil
}

// NewSnowflakeSource opens a Snowflake connection and wraps it as a
// table source for the given query
func NewSnowflakeSource(ctx context.Context, cfg *config.SnowflakeConfig, query string, logger *zap.Logger) (*DatabaseSource, error) {
	logger.Info("Connecting to Snowflake",
		zap.String("account", cfg.Account),
		zap.String("database", cfg.Database),
		zap.String("schema", cfg.Schema))

	db, err := open(ctx, "snowflake", cfg.ConnectionString(),
		cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	return &DatabaseSource{
		db:           db,
		query:        query,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger.Named("snowflake-source"),
	}, nil
}

// open initializes a connection pool and verifies it with a ping
func open(ctx context.Context, driver, dsn string, maxOpen, maxIdle int, maxLifetime, maxIdleTime time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s connection: %w", driver, err)
	}

	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	if maxLifetime > 0 {
		db.SetConnMaxLifetime(maxLifetime)
	}
	if maxIdleTime > 0 {
		db.SetConnMaxIdleTime(maxIdleTime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	return db, nil
}

// Close releases the underlying connection pool
func (s *DatabaseSource) Close() error {
	return s.db.Close()
}

// Load executes the query and converts its result set into a table.
// A result column whose every non-NULL value coerces to a number
// becomes numeric; everything else becomes text.
func (s *DatabaseSource) Load(ctx context.Context) (*model.Table, error) {
	queryCtx := ctx
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	rows, err := s.db.QueryxContext(queryCtx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column names: %w", err)
	}

	var records [][]interface{}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(records), err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		records = append(records, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}

	columns := make([]model.Column, len(names))
	for j, name := range names {
		columns[j] = coerceColumn(name, records, j)
	}

	table, err := model.NewTable(columns...)
	if err != nil {
		return nil, fmt.Errorf("invalid result table: %w", err)
	}

	s.logger.Info("Loaded database source",
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", table.ColumnCount()))

	return table, nil
}

// coerceColumn converts one result-set column into typed cells
func coerceColumn(name string, records [][]interface{}, j int) model.Column {
	numeric := false
	for _, record := range records {
		if record[j] == nil {
			continue
		}
		if _, err := cast.ToFloat64E(record[j]); err != nil {
			numeric = false
			break
		}
		numeric = true
	}

	cells := make([]interface{}, len(records))
	for i, record := range records {
		if record[j] == nil {
			continue
		}
		if numeric {
			cells[i] = cast.ToFloat64(record[j])
		} else {
			cells[i] = cast.ToString(record[j])
		}
	}

	kind := model.KindText
	if numeric {
		kind = model.KindNumeric
	}
	return model.Column{Name: name, Kind: kind, Cells: cells}
}
