package main

import (
	"os"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored row counts per table and per stadium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(_ *gorm.DB, repo gamedata.Repository) error {
				return service.NewStatusService(repo, os.Stdout).Print(cmd.Context())
			})
		},
	}
}
