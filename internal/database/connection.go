// connection.go
//
// Boerd: collect and organize mixed-media content on boards
// Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)
//
// This file is part of boerd.
// boerd is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boerd is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boerd.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"
//    in this material, copies, or source code of derived works.

package database

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	puresqlite "github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes how Connect builds the GORM session
type Options struct {
	LogLevel logger.LogLevel
	Log      zerolog.Logger
}

// Dialector returns the GORM dialector for the configured DB_TYPE
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "mysql", "mariadb":
		dsnCfg := mysqldriver.NewConfig()
		dsnCfg.User = cfg.DBUser
		dsnCfg.Passwd = cfg.DBPassword
		dsnCfg.Net = "tcp"
		dsnCfg.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		dsnCfg.DBName = cfg.DBDatabase
		dsnCfg.ParseTime = true
		dsnCfg.Loc = time.UTC
		dsnCfg.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(dsnCfg.FormatDSN()), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		return postgres.Open(dsn), nil

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		if err := ensureDir(cfg.DBDatabase); err != nil {
			return nil, err
		}
		return sqlite.Open(sqliteDSN(cfg.DBDatabase, false)), nil

	case "sqlite-pure":
		// Same file format without cgo
		if err := ensureDir(cfg.DBDatabase); err != nil {
			return nil, err
		}
		return puresqlite.Open(sqliteDSN(cfg.DBDatabase, true)), nil

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		return sqlserver.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
}

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config, opts Options) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	limit := cfg.DBConnectionLimit
	if isSQLite(cfg.DBType) {
		// one writer at a time; a single connection avoids SQLITE_BUSY
		limit = 1
	}
	if limit < 1 {
		limit = 1
	}
	sqlDB.SetMaxOpenConns(limit)
	sqlDB.SetMaxIdleConns(max(limit/2, 1))

	opts.Log.Info().
		Str("type", cfg.DBType).
		Str("database", cfg.DBDatabase).
		Int("pool", limit).
		Msg("connected to database")

	return db, nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Block{},
		&models.Board{},
		&models.Connection{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isSQLite(dbType string) bool {
	return dbType == "sqlite" || dbType == "sqlite-pure"
}

// sqliteDSN turns on foreign keys so connection cascades hold at the storage layer too.
// The cgo and pure drivers spell their pragmas differently.
func sqliteDSN(path string, pure bool) string {
	if path == ":memory:" {
		return path
	}
	if pure {
		return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return "file:" + path + "?_foreign_keys=1&_busy_timeout=5000"
}

func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
