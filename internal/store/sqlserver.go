package store

import (
	"fmt"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

const defaultMaxOpenConns = 5

// openSQLServer connects the pooled relational tier. The schema there is
// provisioned by the DBA team; no migrations run against it.
func openSQLServer(dsn string, maxOpenConns int) (*gorm.DB, error) {
	database, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlserver: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if maxOpenConns <= 0 {
		maxOpenConns = defaultMaxOpenConns
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)

	if err := probeLiveness(database); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlserver liveness probe: %w", err)
	}

	return database, nil
}
