package main

import (
	"errors"
	"fmt"
	"os"
	"time"
	"ulascansenturk/gameday-weather/config"
	"ulascansenturk/gameday-weather/internal/db/gamedata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errDatabaseNotInitialized = errors.New(`database not initialized, run "gameday init-db" first`)

// requireDatabaseFile keeps read paths from letting the sqlite driver create
// an empty file in place of a missing database.
func requireDatabaseFile(conf *config.Config) error {
	if conf.DBDriver == config.DriverPostgres {
		return nil
	}

	if _, err := os.Stat(conf.DBPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", conf.DBPath, errDatabaseNotInitialized)
		}
		return err
	}

	return nil
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.DBDriver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(conf.DBPath)
	}

	gormLogLevel := logger.Silent
	if log.Logger.GetLevel() <= zerolog.DebugLevel {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DBDriver == config.DriverSQLite {
		// one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(3 * time.Minute)
	}

	log.Debug().Str("driver", conf.DBDriver).Msg("Database opened")

	return db, nil
}

// withRepo opens an existing database for the duration of fn.
func withRepo(fn func(db *gorm.DB, repo gamedata.Repository) error) error {
	if err := requireDatabaseFile(conf); err != nil {
		return err
	}

	return withDatabase(fn)
}

// withDatabase opens the configured database for the duration of fn,
// creating the sqlite file when it is missing.
func withDatabase(fn func(db *gorm.DB, repo gamedata.Repository) error) error {
	db, err := initializeDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	return fn(db, gamedata.NewRepository(db))
}
