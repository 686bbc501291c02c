package main

import (
	"fmt"
	"ulascansenturk/gameday-weather/internal/charts"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Draw PNG charts from the CSVs written by analyze --save-csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := charts.NewRenderer(conf.OutputDir, conf.FiguresDir()).RenderAll()
			if err != nil {
				return err
			}

			for _, path := range written {
				fmt.Println(path)
			}
			return nil
		},
	}
}
