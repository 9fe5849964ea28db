package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/config"
	"github.com/salesdesk/sales-management-be/internal/database"
	"github.com/salesdesk/sales-management-be/internal/importer"
	"github.com/salesdesk/sales-management-be/internal/repositories"
	"github.com/salesdesk/sales-management-be/internal/utils"
)

func main() {
	var (
		file      string
		batchSize int
	)
	flag.StringVar(&file, "file", "", "Path to the CSV file to import")
	flag.IntVar(&batchSize, "batch", importer.DefaultBatchSize, "Rows per batch")
	flag.Parse()

	utils.InitLogger()

	if file == "" {
		log.Fatal().Msg("usage: import -file <csv-file-path> [-batch N]")
	}
	if _, err := os.Stat(file); err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("import file not found")
	}

	cfg := config.LoadConfig()
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ failed to connect to database")
	}

	store := repositories.NewSQLStore(db)
	imp := importer.New(store, importer.Options{BatchSize: batchSize})

	rows, err := imp.ImportFile(file)
	if err != nil {
		var aborted *apperrors.ImportAborted
		if errors.As(err, &aborted) {
			// Already-flushed batches stay committed; report how far we got
			// so an operator can resume or inspect.
			log.Fatal().Err(err).Int("committed_rows", aborted.Committed).Msg("❌ CSV import aborted")
		}
		log.Fatal().Err(err).Msg("❌ CSV import failed")
	}

	log.Info().Int("rows", rows).Str("file", file).Msg("✅ CSV import completed")
}
