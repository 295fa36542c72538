// Command seed loads a YAML fixture of users into MongoDB and links their
// friends. All friend names are resolved before anything is written.
//
// Flags:
//
//	--file           path to the fixture file (overrides fixture_path)
//	--dry-run        validate the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb"
	mongouser "github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb/user"
	"github.com/heartmarshall/usergraph-backend/internal/app"
	"github.com/heartmarshall/usergraph-backend/internal/app/seeder"
	"github.com/heartmarshall/usergraph-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the fixture file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.FixturePath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.FixturePath == "" {
		logger.Error("fixture path is required (--file or SEEDER_FIXTURE_PATH)")
		os.Exit(1)
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(logger, appCfg, *seederCfg, fixture); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, appCfg *config.Config, seederCfg seeder.Config, fixture *seeder.Fixture) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := mongodb.NewClient(ctx, appCfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Warn("close mongo", slog.String("error", err.Error()))
		}
	}()

	repo := mongouser.New(db.Collection(appCfg.Mongo.Collection))
	pipeline := seeder.NewPipeline(logger, repo, seederCfg)
	if err := pipeline.Run(ctx, fixture); err != nil {
		return err
	}

	for name, id := range pipeline.IDs() {
		logger.Info("seeded user", slog.String("name", name), slog.String("user_id", id))
	}
	return nil
}
