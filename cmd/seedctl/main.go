package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"flashcards/backend/internal/db"
	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/service"
	"flashcards/backend/internal/snowflake"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seedctl: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "seedctl",
		Usage:   "Seed the flashcards database from a vocabulary CSV",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the SQLite database file",
				Value:   "./data/flashcards.db",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.IntFlag{
				Name:  "node-id",
				Usage: "Snowflake node id",
				Value: 1,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "csv",
			},
		},
		Action: runSeed,
	}
}

func runSeed(ctx context.Context, cmd *cli.Command) error {
	csvPath := cmd.StringArg("csv")
	if csvPath == "" {
		return fmt.Errorf("usage: seedctl [flags] <file.csv>")
	}

	logger.Init(logger.ParseLevel(cmd.String("log-level")))

	if err := snowflake.Init(int64(cmd.Int("node-id"))); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	dbConn, err := db.Open(cmd.String("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbConn.Close()

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	importService := service.NewImportService(dbConn)
	result, err := importService.Import(ctx, file, nil)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("topics created:   %d\n", result.TopicsCreated)
	fmt.Printf("entries created:  %d\n", result.EntriesCreated)
	fmt.Printf("entries updated:  %d\n", result.EntriesUpdated)
	fmt.Printf("links created:    %d\n", result.LinksCreated)
	fmt.Printf("examples created: %d\n", result.ExamplesCreated)
	fmt.Printf("rows skipped:     %d of %d\n", result.RowsSkipped, result.RowsTotal)
	return nil
}
