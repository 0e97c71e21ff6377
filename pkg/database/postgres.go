package database

import (
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Get returns the process-wide database handle, opening the connection on
// first use. All requests share the one handle; gorm serializes connection
// setup internally.
func Get() *gorm.DB {
	once.Do(func() {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}

		var err error
		// TranslateError maps driver unique-violation errors onto
		// gorm.ErrDuplicatedKey so repositories can pattern-match them.
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	})
	return db
}
