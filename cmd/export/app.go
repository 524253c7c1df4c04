package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/okian/contestdash/internal/adapters/sheet"
	app "github.com/okian/contestdash/internal/app"
	"github.com/okian/contestdash/internal/config"
	"github.com/okian/contestdash/pkg/logger"
)

// Flag names.
const (
	flagFile        = "file"
	flagSourceSheet = "source-sheet"
	flagDebug       = "debug"
	flagSheet       = "sheet"
	flagMinRating   = "min-rating"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "contestdash-export",
		Usage: "Write derived rating sheets into the contest workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagFile,
				Usage: "Path to the contest workbook (defaults to data_path from config)",
			},
			&cli.StringFlag{
				Name:  flagSourceSheet,
				Usage: "Sheet holding the contest rows (defaults to the first sheet)",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "Prints verbose logs",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "latest",
				Usage:  "Write each user's latest contest row with its college rank",
				Flags:  []cli.Flag{sheetFlag("Latest Ratings")},
				Action: cmdLatest,
			},
			{
				Name:    "high",
				Aliases: []string{"high-ratings"},
				Usage:   "Write users whose latest rating exceeds --min-rating, with stars",
				Flags: []cli.Flag{
					sheetFlag("2 star and above"),
					&cli.FloatFlag{
						Name:  flagMinRating,
						Usage: "Strict lower bound on the latest rating (defaults to high_rating_min from config)",
					},
				},
				Action: cmdHigh,
			},
		},
	}
}

func sheetFlag(def string) cli.Flag {
	return &cli.StringFlag{
		Name:  flagSheet,
		Usage: fmt.Sprintf("Name of the sheet to (re)create (defaults to %q or the configured name)", def),
	}
}

func cmdLatest(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	svc, err := startService(ctx, cfg)
	if err != nil {
		return err
	}
	n, err := svc.ExportLatest(ctx)
	if err != nil {
		return fmt.Errorf("export latest: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.Root().Writer, "wrote %d rows to %q in %s\n", n, cfg.LatestSheet, cfg.DataPath)
	return nil
}

func cmdHigh(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet(flagMinRating) {
		cfg.HighRatingMin = cmd.Float(flagMinRating)
	}
	svc, err := startService(ctx, cfg)
	if err != nil {
		return err
	}
	n, err := svc.ExportHighRatings(ctx, cfg.HighRatingMin)
	if err != nil {
		return fmt.Errorf("export high ratings: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.Root().Writer, "wrote %d rows to %q in %s\n", n, cfg.HighRatingsSheet, cfg.DataPath)
	return nil
}

// loadConfig layers command-line flags over the usual config sources.
func loadConfig(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cmd.Bool(flagDebug) {
		cfg.LogLevel = "debug"
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}

	if v := cmd.String(flagFile); v != "" {
		cfg.DataPath = v
	}
	if cmd.IsSet(flagSourceSheet) {
		cfg.HistorySheet = cmd.String(flagSourceSheet)
	}
	if v := cmd.String(flagSheet); v != "" {
		if cmd.Name == "latest" {
			cfg.LatestSheet = v
		} else {
			cfg.HighRatingsSheet = v
		}
	}
	return cfg, nil
}

func startService(ctx context.Context, cfg *config.Config) (*app.Service, error) {
	opts := append(app.ConfigOptions(cfg),
		app.WithLogger(logger.Named("export")),
		app.WithReader(sheet.NewReader()),
		app.WithWriter(sheet.NewWriter()),
	)
	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
