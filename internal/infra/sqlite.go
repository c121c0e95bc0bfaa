package infra

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizgen/internal/models/db_models"
)

var (
	openOnce sync.Once
	handle   *gorm.DB
)

// InitSqlite opens the local quiz database and caches the handle for the
// process lifetime. The path comes from QUIZGEN_DB and defaults to a file
// next to the binary.
func InitSqlite() *gorm.DB {
	openOnce.Do(func() {
		path := os.Getenv("QUIZGEN_DB")
		if path == "" {
			path = "quizgen.db"
		}

		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			logrus.WithError(err).Fatal("Error opening quiz database")
		}

		if err := db.AutoMigrate(&db_models.SavedQuiz{}); err != nil {
			logrus.WithError(err).Fatal("Error migrating quiz database")
		}

		handle = db
	})
	return handle
}

func CloseSqlite(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	}
}
