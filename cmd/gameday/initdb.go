package main

import (
	"fmt"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/db/schema"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the locations, teams, games and fact tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB, _ gamedata.Repository) error {
				if err := schema.Create(db.WithContext(cmd.Context())); err != nil {
					return err
				}

				log.Info().Str("driver", conf.DBDriver).Int("tables", len(schema.Models())).Msg("Schema ready")
				fmt.Println("Database schema created.")
				return nil
			})
		},
	}
}
