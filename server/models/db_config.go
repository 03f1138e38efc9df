package models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Daskott/launchpad/server/logger"
	"github.com/Daskott/launchpad/shared"
	"github.com/Daskott/launchpad/utils"
	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	DB_NAME = "launchpad.db"

	SQLITE_DRIVER = "sqlite"
	MYSQL_DRIVER  = "mysql"
)

var logg = logger.NewLogger()

// Open connects to the configured database and auto-migrates the schema
func Open(config shared.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %v", err)
	}

	// sqlite allows a single writer, serialize access so the unique index settles races
	if config.Driver != MYSQL_DRIVER {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = AutoMigrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate auto-migrates the db schema
func AutoMigrate(db *gorm.DB) error {
	logg.Debug("Migrating 'ContactSubmission' schema")
	return db.AutoMigrate(&ContactSubmission{})
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func dialectorFor(config shared.DatabaseConfig) (gorm.Dialector, error) {
	switch config.Driver {
	case MYSQL_DRIVER:
		return mysql.Open(config.DSN), nil
	case SQLITE_DRIVER, "":
		dsn, err := sqliteDSN(config.PassPhrase, config.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to set sqlite DSN: %v", err)
		}
		return sqliteEncrypt.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database driver %q, must be %q or %q", config.Driver, SQLITE_DRIVER, MYSQL_DRIVER)
}

func sqliteDSN(passPhrase string, dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	dbFilePath := filepath.Join(dbDir, DB_NAME)
	dbName := fmt.Sprintf("file:%v", dbFilePath)

	return fmt.Sprintf(
		"%v?_pragma_key=%s&_pragma_cipher_page_size=4096&_journal_mode=WAL",
		dbName,
		passPhrase,
	), nil
}

func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}
