// Command seeder loads a directory dataset (activities, buildings, companies)
// into the database. Without a dataset file it loads the built-in demo data.
// Existing rows are skipped, so the command can be re-run.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        do not write to the database
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

	"github.com/heartmarshall/company-directory/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/activity"
	buildingrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/building"
	companyrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/company"
	redisadapter "github.com/heartmarshall/company-directory/internal/adapter/redis"
	"github.com/heartmarshall/company-directory/internal/adapter/redis/taxonomycache"
	"github.com/heartmarshall/company-directory/internal/app"
	"github.com/heartmarshall/company-directory/internal/app/seeder"
	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "do not write to the database")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
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

	if err := seederCfg.ApplyFlags(*phaseFlag, *dryRunFlag); err != nil {
		logger.Error("invalid flags", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dataset, err := seederCfg.Dataset()
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seederCfg.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	activities := activityrepo.New(pool)
	buildings := buildingrepo.New(pool)

	// Activity writes must invalidate the snapshot the API server reads.
	taxonomySvc := taxonomy.NewService(logger, activities, nil, txm, appCfg.Taxonomy.MaxDepth)
	if appCfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, appCfg.Redis)
		if err != nil {
			logger.Error("connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Close() //nolint:errcheck

		cache := taxonomycache.New(client, appCfg.Redis.TTL)
		taxonomySvc = taxonomy.NewService(logger, activities, cache, txm, appCfg.Taxonomy.MaxDepth)
	}
	buildingSvc := building.NewService(logger, buildings, txm)
	companySvc := company.NewService(logger, companyrepo.New(pool), buildings, activities, taxonomySvc, txm, appCfg.Taxonomy.MaxDepth)

	pipeline := seeder.NewPipeline(logger, taxonomySvc, buildingSvc, companySvc, *seederCfg)
	if err := pipeline.Run(ctx, dataset, seederCfg.Phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
