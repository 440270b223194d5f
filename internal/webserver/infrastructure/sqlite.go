package infrastructure

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite database at path, creating it if needed, and migrates its schema
func Connect(appFs afero.Fs, path string) (*gorm.DB, error) {
	inMemory := strings.Contains(path, ":memory:")
	if !inMemory {
		exists, err := afero.Exists(appFs, path)
		if err != nil {
			return nil, err
		}
		if !exists {
			f, err := appFs.Create(path)
			if err != nil {
				return nil, fmt.Errorf("error creating database at %s: %w", path, err)
			}
			f.Close()
			zap.L().Info("created database", zap.String("path", path))
		}
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if inMemory {
		// Every connection to an in memory database gets a database of its own
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Board{}, &model.Invite{}, &model.Content{}); err != nil {
		return nil, err
	}
	return db, nil
}
