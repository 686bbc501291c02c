package gamedata

import (
	"context"
	"fmt"
	"strings"
	"ulascansenturk/gameday-weather/internal/analysis"
	"ulascansenturk/gameday-weather/internal/db/schema"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FactKey identifies one per-date per-location record.
type FactKey struct {
	GameDate   string `gorm:"column:game_date"`
	LocationID uint   `gorm:"column:location_id"`
}

type TableCount struct {
	Table string
	Rows  int64
	// Exists is false when the table was never created.
	Exists bool
}

type LocationCount struct {
	CityName string `gorm:"column:city_name"`
	Rows     int64  `gorm:"column:row_count"`
}

type RecentGame struct {
	GameDate     string `gorm:"column:game_date"`
	StadiumCity  string `gorm:"column:stadium_city"`
	HomeTeamName string `gorm:"column:home_team_name"`
	AwayTeamName string `gorm:"column:away_team_name"`
	HomeScore    *int   `gorm:"column:home_score"`
	AwayScore    *int   `gorm:"column:away_score"`
}

type Repository interface {
	LoadJoinedGames(ctx context.Context) (analysis.Dataset, error)

	GetOrCreateLocation(ctx context.Context, city string) (uint, error)
	GetOrCreateTeam(ctx context.Context, name, conference string, locationID *uint) (uint, error)
	ExistingGameIDs(ctx context.Context) (map[int64]struct{}, error)
	ExistingFactKeys(ctx context.Context, table string) (map[FactKey]struct{}, error)

	InsertGame(ctx context.Context, game *schema.Game) (bool, error)
	InsertWeather(ctx context.Context, weather *schema.Weather) (bool, error)
	InsertAirQuality(ctx context.Context, aq *schema.AirQuality) (bool, error)
	InsertUV(ctx context.Context, uv *schema.UVData) (bool, error)
	InsertMoon(ctx context.Context, moon *schema.MoonData) (bool, error)

	CountRows(ctx context.Context) ([]TableCount, error)
	CountByLocation(ctx context.Context, table string) ([]LocationCount, error)
	RecentGames(ctx context.Context, limit int) ([]RecentGame, error)
	ClearCollected(ctx context.Context) error
}

type GameDataSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &GameDataSQLRepository{db: db}
}

// joinedRow is the scan target of the joined games query.
type joinedRow struct {
	GameID           int64    `gorm:"column:game_id"`
	GameDate         string   `gorm:"column:game_date"`
	StadiumCity      string   `gorm:"column:stadium_city"`
	HomeTeamName     string   `gorm:"column:home_team_name"`
	AwayTeamName     string   `gorm:"column:away_team_name"`
	HomeScore        *int     `gorm:"column:home_score"`
	AwayScore        *int     `gorm:"column:away_score"`
	TotalPoints      *int     `gorm:"column:total_points"`
	Attendance       *int     `gorm:"column:attendance"`
	Temperature      *float64 `gorm:"column:temperature"`
	WindSpeed        *float64 `gorm:"column:wind_speed"`
	Precipitation    *float64 `gorm:"column:precipitation"`
	MoonIllumination *float64 `gorm:"column:moon_illumination"`
	MoonPhase        *string  `gorm:"column:moon_phase"`
}

func (r joinedRow) toGameRow() analysis.GameRow {
	return analysis.GameRow{
		GameID:           r.GameID,
		GameDate:         r.GameDate,
		StadiumCity:      r.StadiumCity,
		HomeTeamName:     r.HomeTeamName,
		AwayTeamName:     r.AwayTeamName,
		HomeScore:        r.HomeScore,
		AwayScore:        r.AwayScore,
		TotalPoints:      r.TotalPoints,
		Attendance:       r.Attendance,
		Temperature:      r.Temperature,
		WindSpeed:        r.WindSpeed,
		Precipitation:    r.Precipitation,
		MoonIllumination: r.MoonIllumination,
		MoonPhase:        r.MoonPhase,
	}
}

// LoadJoinedGames returns one row per game with a resolvable location.
// Weather and moon columns come from at most one record per (date, location)
// and are null when nothing was collected. A fact table that does not exist
// yields null columns and is reported in Dataset.Missing.
func (r *GameDataSQLRepository) LoadJoinedGames(ctx context.Context) (analysis.Dataset, error) {
	db := r.db.WithContext(ctx)

	var ds analysis.Dataset

	hasWeather := db.Migrator().HasTable(schema.TableWeather)
	hasMoon := db.Migrator().HasTable(schema.TableMoon)

	var sb strings.Builder
	sb.WriteString(`SELECT g.id AS game_id, g.game_date, l.city_name AS stadium_city,
 COALESCE(ht.team_name, '') AS home_team_name, COALESCE(awt.team_name, '') AS away_team_name,
 g.home_score, g.away_score, (g.home_score + g.away_score) AS total_points, g.attendance,`)

	if hasWeather {
		sb.WriteString(" w.temperature, w.wind_speed, w.precipitation,")
	} else {
		log.Warn().Str("table", schema.TableWeather).Msg("Table not found, weather columns will be empty")
		sb.WriteString(" NULL AS temperature, NULL AS wind_speed, NULL AS precipitation,")
		ds.Missing = append(ds.Missing, analysis.MetricTemperature, analysis.MetricWindSpeed, analysis.MetricPrecipitation)
	}

	if hasMoon {
		sb.WriteString(" m.moon_illumination, m.moon_phase")
	} else {
		log.Warn().Str("table", schema.TableMoon).Msg("Table not found, moon columns will be empty")
		sb.WriteString(" NULL AS moon_illumination, NULL AS moon_phase")
		ds.Missing = append(ds.Missing, analysis.MetricMoonIllumination)
	}

	sb.WriteString(`
 FROM games g
 JOIN locations l ON l.id = g.location_id
 LEFT JOIN teams ht ON ht.id = g.home_team_id
 LEFT JOIN teams awt ON awt.id = g.away_team_id`)

	if hasWeather {
		sb.WriteString("\n LEFT JOIN weather w ON w.game_date = g.game_date AND w.location_id = g.location_id")
	}
	if hasMoon {
		sb.WriteString("\n LEFT JOIN moon_data m ON m.game_date = g.game_date AND m.location_id = g.location_id")
	}
	sb.WriteString("\n ORDER BY g.game_date, g.id")

	var rows []joinedRow
	if err := db.Raw(sb.String()).Scan(&rows).Error; err != nil {
		return analysis.Dataset{}, fmt.Errorf("loading joined games: %w", err)
	}

	ds.Rows = make([]analysis.GameRow, 0, len(rows))
	for _, row := range rows {
		ds.Rows = append(ds.Rows, row.toGameRow())
	}

	log.Info().Int("rows", len(ds.Rows)).Msg("Loaded joined dataset")

	return ds, nil
}

func (r *GameDataSQLRepository) GetOrCreateLocation(ctx context.Context, city string) (uint, error) {
	location := schema.Location{}
	err := r.db.WithContext(ctx).
		Where(schema.Location{CityName: city}).
		FirstOrCreate(&location).Error
	if err != nil {
		return 0, err
	}
	return location.ID, nil
}

func (r *GameDataSQLRepository) GetOrCreateTeam(ctx context.Context, name, conference string, locationID *uint) (uint, error) {
	team := schema.Team{}
	err := r.db.WithContext(ctx).
		Where(schema.Team{TeamName: name}).
		Attrs(schema.Team{Conference: conference, LocationID: locationID}).
		FirstOrCreate(&team).Error
	if err != nil {
		return 0, err
	}
	return team.ID, nil
}

func (r *GameDataSQLRepository) ExistingGameIDs(ctx context.Context) (map[int64]struct{}, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&schema.Game{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	existing := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	return existing, nil
}

func (r *GameDataSQLRepository) ExistingFactKeys(ctx context.Context, table string) (map[FactKey]struct{}, error) {
	if !isFactTable(table) {
		return nil, fmt.Errorf("%q is not a fact table", table)
	}

	var keys []FactKey
	if err := r.db.WithContext(ctx).Table(table).Select("game_date, location_id").Scan(&keys).Error; err != nil {
		return nil, err
	}

	existing := make(map[FactKey]struct{}, len(keys))
	for _, key := range keys {
		existing[key] = struct{}{}
	}
	return existing, nil
}

func (r *GameDataSQLRepository) InsertGame(ctx context.Context, game *schema.Game) (bool, error) {
	return r.insert(ctx, game)
}

func (r *GameDataSQLRepository) InsertWeather(ctx context.Context, weather *schema.Weather) (bool, error) {
	return r.insert(ctx, weather)
}

func (r *GameDataSQLRepository) InsertAirQuality(ctx context.Context, aq *schema.AirQuality) (bool, error) {
	return r.insert(ctx, aq)
}

func (r *GameDataSQLRepository) InsertUV(ctx context.Context, uv *schema.UVData) (bool, error) {
	return r.insert(ctx, uv)
}

func (r *GameDataSQLRepository) InsertMoon(ctx context.Context, moon *schema.MoonData) (bool, error) {
	return r.insert(ctx, moon)
}

// insert reports false when the row already existed.
func (r *GameDataSQLRepository) insert(ctx context.Context, value interface{}) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(value)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GameDataSQLRepository) CountRows(ctx context.Context) ([]TableCount, error) {
	db := r.db.WithContext(ctx)

	tables := []string{schema.TableLocations, schema.TableTeams, schema.TableGames}
	tables = append(tables, schema.FactTables...)

	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			counts = append(counts, TableCount{Table: table})
			continue
		}

		var n int64
		if err := db.Table(table).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts = append(counts, TableCount{Table: table, Rows: n, Exists: true})
	}

	return counts, nil
}

func (r *GameDataSQLRepository) CountByLocation(ctx context.Context, table string) ([]LocationCount, error) {
	if table != schema.TableGames && !isFactTable(table) {
		return nil, fmt.Errorf("%q has no location column", table)
	}

	var counts []LocationCount
	err := r.db.WithContext(ctx).
		Table(table+" t").
		Select("l.city_name AS city_name, COUNT(*) AS row_count").
		Joins("JOIN locations l ON l.id = t.location_id").
		Group("l.city_name").
		Order("row_count DESC, l.city_name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *GameDataSQLRepository) RecentGames(ctx context.Context, limit int) ([]RecentGame, error) {
	var games []RecentGame
	err := r.db.WithContext(ctx).
		Table("games g").
		Select(`g.game_date, l.city_name AS stadium_city,
 COALESCE(ht.team_name, '') AS home_team_name, COALESCE(awt.team_name, '') AS away_team_name,
 g.home_score, g.away_score`).
		Joins("JOIN locations l ON l.id = g.location_id").
		Joins("LEFT JOIN teams ht ON ht.id = g.home_team_id").
		Joins("LEFT JOIN teams awt ON awt.id = g.away_team_id").
		Order("g.game_date DESC, g.id DESC").
		Limit(limit).
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ClearCollected deletes games, teams, air quality and UV rows in one
// transaction. Weather, moon and location rows are kept since they are keyed
// by date and city only and are slow to re-collect.
func (r *GameDataSQLRepository) ClearCollected(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{schema.TableGames, schema.TableTeams, schema.TableAirQuality, schema.TableUV} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
			log.Info().Str("table", table).Msg("Cleared table")
		}
		return nil
	})
}

func isFactTable(table string) bool {
	for _, t := range schema.FactTables {
		if t == table {
			return true
		}
	}
	return false
}
