package config

import (
	"Jokerscore/models/postgres"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDSN builds the connection URL for lib/pq.
func PostgresDSN(cfg PostgresConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
}

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM(cfg PostgresConfig, verbose bool) (*gorm.DB, error) {
	// NOTE: See https://github.com/go-gorm/gorm/issues/5409
	sqlDB, err := sql.Open("postgres", PostgresDSN(cfg))
	if err != nil {
		log.Printf("[POSTGRES-ERROR] Error connecting to PostgreSQL: %v", err)
		return nil, err
	}

	db, err := OpenGORM(sqlDB, verbose)
	if err != nil {
		log.Printf("[POSTGRES-ERROR] Error connecting to PostgreSQL with GORM: %v", err)
		return nil, err
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		log.Printf("[POSTGRES-ERROR] Error pinging PostgreSQL: %v", err)
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("[POSTGRES] Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// OpenGORM wraps an already opened connection, which is how tests plug in sqlmock.
func OpenGORM(sqlDB *sql.DB, verbose bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if verbose {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		)
	}

	return gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
}

// MigrateDatabase migrates the GORM models to the PostgreSQL database
func MigrateDatabase(db *gorm.DB) error {
	// NOTE: needs postgres driver v1.4.0, see https://github.com/pilinux/gorest/issues/167
	if err := db.AutoMigrate(postgres.ScoredRound{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Println("[POSTGRES] PostgreSQL database migrated successfully")
	return nil
}
