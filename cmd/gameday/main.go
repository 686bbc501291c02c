package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/gameday-weather/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var conf *config.Config

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "gameday",
		Short:         "Collect college football games with their weather and analyse how conditions relate to scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			conf = loaded
			setupLogger(conf)
			return nil
		},
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newInitDBCmd(),
		newCollectCmd(),
		newRenderCmd(),
		newStatusCmd(),
		newClearCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

func setupLogger(conf *config.Config) {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	log.Logger = log.Logger.
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Logger()
}
