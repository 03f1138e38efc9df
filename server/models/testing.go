package models

import (
	"github.com/Daskott/launchpad/shared"
	"gorm.io/gorm"
)

const TEST_DB_PASSPHRASE = "test-passphrase"

// InitializeTestDb opens a fresh encrypted sqlite db under rootDir, e.g. t.TempDir()
func InitializeTestDb(rootDir string) (*gorm.DB, error) {
	return Open(shared.DatabaseConfig{
		Driver:     SQLITE_DRIVER,
		Dir:        rootDir,
		PassPhrase: TEST_DB_PASSPHRASE,
	})
}
