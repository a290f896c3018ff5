package repo

import (
	"fmt"
	"strings"

	"TokenKeeper/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultSQLiteDSN используется, когда DATABASE_URI не задан.
const DefaultSQLiteDSN = "file:tokenkeeper.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// dialectorFor выбирает драйвер по виду DSN: postgres-URL или key=value строка → Postgres,
// всё остальное (включая пустую строку) → SQLite на modernc.org/sqlite.
func dialectorFor(dsn string) gorm.Dialector {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		return postgres.Open(dsn)
	}
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// InitDB открывает БД и накатывает схему.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.OneTimeToken{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
