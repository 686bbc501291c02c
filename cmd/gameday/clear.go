package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"ulascansenturk/gameday-weather/internal/db/gamedata"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete collected games, teams, air quality and UV rows",
		Long:  "Deletes games, teams, air quality and UV rows so they can be collected again. Weather, moon and location rows are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmAction("Delete all games, teams, air quality and UV rows?") {
				fmt.Println("Cancelled.")
				return nil
			}

			return withRepo(func(_ *gorm.DB, repo gamedata.Repository) error {
				if err := repo.ClearCollected(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Collected data cleared.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
