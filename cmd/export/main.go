package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"campaignd/internal/adapter/repo"
	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/report"
)

// export writes the full submission history as CSV to stdout, for operators
// who want a dump without going through the HTTP surface.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	submissions := repo.NewSubmissionRepository(runner, logger)

	rows, err := submissions.ListWithCampaign(ctx, domain.ListFilter{Limit: -1}.Normalize())
	if err != nil {
		logger.Fatal().Err(err).Msg("list submissions")
	}
	if err := report.WriteCSV(os.Stdout, rows); err != nil {
		logger.Fatal().Err(err).Msg("write csv")
	}
}
