package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table in creation order; locations and teams come
// before the tables that reference them.
func Models() []interface{} {
	return []interface{}{
		&Location{},
		&Team{},
		&Game{},
		&Weather{},
		&AirQuality{},
		&UVData{},
		&MoonData{},
	}
}

// FactTables are keyed by (game_date, location_id).
var FactTables = []string{TableWeather, TableAirQuality, TableUV, TableMoon}

// Create creates any missing table and index. Existing tables are left as
// they are.
func Create(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
