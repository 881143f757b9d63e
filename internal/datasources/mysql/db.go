package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const (
	maxOpenConns = 10
	maxIdleConns = 10
)

// Connect opens a pool against the MySQL DSN in uri and checks it is reachable.
func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	cfg, err := parseConfig(uri)
	if err != nil {
		return nil, err
	}

	connector, err := mysqldriver.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating MySQL connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// parseConfig keeps any parameters already in uri, but always scans DATE and
// DATETIME columns into time.Time in UTC.
func parseConfig(uri string) (*mysqldriver.Config, error) {
	cfg, err := mysqldriver.ParseDSN(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing MySQL DSN: %w", err)
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC

	return cfg, nil
}
