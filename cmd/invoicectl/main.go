package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/gen/ent"
	"github.com/si-akram/invoice-docai/internal/common"
	"github.com/si-akram/invoice-docai/internal/docai"
	"github.com/si-akram/invoice-docai/internal/export"
	"github.com/si-akram/invoice-docai/internal/gcs"
	"github.com/si-akram/invoice-docai/internal/pipeline"
	"github.com/si-akram/invoice-docai/internal/repository"
	"github.com/si-akram/invoice-docai/internal/validation"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		file       = flag.String("file", "", "process a single input file by name")
		all        = flag.Bool("all", false, "process every matching file in the input folder")
		ext        = flag.String("ext", ".pdf", "input file extension filter for --all")
		list       = flag.String("list", "", "list documents, optionally filtered by document status")
		inputs     = flag.Bool("inputs", false, "list files waiting in the input folder")
		latest     = flag.String("latest", "", "show the latest processing record for a file name")
		summary    = flag.Int("summary", 0, "print the entity summary for a processing id")
		revalidate = flag.Int("revalidate", 0, "re-run validation for a processing id from stored output")
		stats      = flag.Bool("stats", false, "print processing statistics")
		out        = flag.String("export", "", "export documents to an XLSX file at this path")
	)
	flag.Parse()

	if *file == "" && !*all && *list == "" && !*inputs && *latest == "" && *summary == 0 && *revalidate == 0 && !*stats && *out == "" {
		printError("Error: one of --file, --all, --list, --inputs, --latest, --summary, --revalidate, --stats, --export is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	// Initialize database
	entc, pool, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	repo := repository.NewProcessingRepository(entc, logger)

	// Read-only commands need no GCP wiring.
	switch {
	case *list != "":
		runList(ctx, repo, *list)
		return
	case *latest != "":
		runLatest(ctx, repo, *latest)
		return
	case *summary != 0:
		runSummary(ctx, repo, logger, *summary, cfg)
		return
	case *stats:
		runStats(ctx, repo)
		return
	case *out != "":
		runExport(ctx, repo, logger, *out)
		return
	}

	processor, cleanup, err := buildProcessor(ctx, cfg, repo, logger)
	if err != nil {
		logger.Error("failed to initialize pipeline", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	switch {
	case *inputs:
		files, err := processor.Objects.ListInputFiles(ctx, *ext)
		if err != nil {
			logger.Error("listing input files failed", "error", err)
			os.Exit(1)
		}
		for _, f := range files {
			fmt.Println(f)
		}
		fmt.Printf("%d input files\n", len(files))
	case *revalidate != 0:
		result, err := processor.Revalidate(ctx, *revalidate)
		if err != nil {
			logger.Error("revalidation failed", "processing_id", *revalidate, "error", err)
			os.Exit(1)
		}
		printResult(result)
	case *file != "":
		result, err := processor.ProcessFile(ctx, *file)
		if result != nil {
			printResult(result)
		}
		if err != nil {
			os.Exit(1)
		}
	case *all:
		batch, err := processor.ProcessAll(ctx, *ext)
		if err != nil {
			logger.Error("batch failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("run %s: %d files, %d errors\n", batch.RunID, batch.Total, batch.Errors)
		for status, n := range batch.ByDocumentStatus {
			fmt.Printf("  %-15s %d\n", status, n)
		}
		// Partial failures are already recorded per document; only a batch
		// with no successful file at all fails the job.
		if batch.Total > 0 && batch.Errors == batch.Total {
			os.Exit(1)
		}
	}
}

// openDatabase opens Postgres from DB_URL, or an in-memory SQLite database
// (with its schema created on the spot) when --inmem is set.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inmem {
		entc, err := repository.OpenSQLite("", logger)
		if err != nil {
			return nil, nil, err
		}
		if err := entc.Schema.Create(ctx); err != nil {
			return nil, nil, fmt.Errorf("creating sqlite schema: %w", err)
		}
		return entc, nil, nil
	}
	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL env var is required (or pass --inmem)")
	}
	return repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}

func buildProcessor(ctx context.Context, cfg *common.Config, repo repository.ProcessingRepository, logger *slog.Logger) (*pipeline.Processor, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("storage client: %w", err)
	}

	extractor, err := docai.NewClient(ctx, docai.Config{
		ProjectID:   cfg.GCP.ProjectID,
		Location:    cfg.GCP.Location,
		ProcessorID: cfg.GCP.ProcessorID,
	}, logger)
	if err != nil {
		_ = storageClient.Close()
		return nil, nil, err
	}

	objects := gcs.NewManager(storageClient, gcs.Config{
		Bucket:          cfg.Storage.Bucket,
		InputFolder:     cfg.Storage.InputFolder,
		ProcessedFolder: cfg.Storage.ProcessedFolder,
		FailedFolder:    cfg.Storage.FailedFolder,
	}, logger)

	processor := &pipeline.Processor{
		Logger: logger,
		Cfg: validation.Config{
			RequiredEntities:    cfg.Validation.RequiredEntities,
			ConfidenceThreshold: cfg.Validation.ConfidenceThreshold,
		},
		Extractor: extractor,
		Objects:   objects,
		Records:   repo,
	}
	cleanup := func() {
		_ = extractor.Close()
		_ = storageClient.Close()
	}
	return processor, cleanup, nil
}

func runList(ctx context.Context, repo repository.ProcessingRepository, statusArg string) {
	filter := repository.ListFilter{Limit: 100}
	if !strings.EqualFold(statusArg, "all") {
		filter.DocumentStatus = constants.DocumentStatus(strings.ToUpper(statusArg))
	}
	recs, err := repo.ListDocuments(ctx, filter)
	if err != nil {
		printError("Error: listing documents: %v\n", err)
		os.Exit(1)
	}
	for _, r := range recs {
		code := ""
		if r.ExceptionReasonCode != nil {
			code = *r.ExceptionReasonCode
		}
		fmt.Printf("%-6d %-32s %-10s %-15s %s\n", r.ID, r.FileName, r.ProcessingStatus, r.DocumentStatus, code)
	}
	fmt.Printf("%d documents\n", len(recs))
}

func runLatest(ctx context.Context, repo repository.ProcessingRepository, fileName string) {
	r, err := repo.LatestByFileName(ctx, fileName)
	if err != nil {
		printError("Error: no record for %s: %v\n", fileName, err)
		os.Exit(1)
	}
	fmt.Printf("%-6d %-32s %-10s %-15s %s\n", r.ID, r.FileName, r.ProcessingStatus, r.DocumentStatus, r.UpdatedAt.Format("2006-01-02 15:04:05"))
	if r.ExceptionReasonDescription != nil {
		fmt.Printf("  exception: %s\n", *r.ExceptionReasonDescription)
	}
	if r.ErrorMessage != nil {
		fmt.Printf("  error: %s\n", *r.ErrorMessage)
	}
}

func runSummary(ctx context.Context, repo repository.ProcessingRepository, logger *slog.Logger, id int, cfg *common.Config) {
	// Summarize only needs the repository; the pipeline's GCP collaborators
	// stay nil for this read-only path.
	p := &pipeline.Processor{
		Logger: logger,
		Cfg: validation.Config{
			RequiredEntities:    cfg.Validation.RequiredEntities,
			ConfidenceThreshold: cfg.Validation.ConfidenceThreshold,
		},
		Records: repo,
	}
	s, err := p.Summarize(ctx, id)
	if err != nil {
		printError("Error: summarizing %d: %v\n", id, err)
		os.Exit(1)
	}
	fmt.Printf("%s  processing=%s document=%s\n", s.Record.FileName, s.Record.ProcessingStatus, s.Record.DocumentStatus)
	fmt.Printf("entities: %d total, %d unique\n", s.TotalEntities, s.UniqueEntityTypes)
	for _, e := range s.Entities {
		fmt.Printf("  %-28s %-30q conf=%.2f avg=%.2f min=%.2f max=%.2f values=%d\n",
			e.Name, e.Best, e.BestConf, e.AvgConfidence, e.MinConfidence, e.MaxConfidence, e.Count)
	}
	for _, mv := range s.MultiValued {
		fmt.Printf("  multi-valued: %s x%d %v\n", mv.Name, mv.Count, mv.Values)
	}
}

func runStats(ctx context.Context, repo repository.ProcessingRepository) {
	stats, err := repo.GetStats(ctx)
	if err != nil {
		printError("Error: loading stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("total: %d\n", stats.Total)
	for k, v := range stats.ByProcessing {
		fmt.Printf("  processing %-12s %d\n", k, v)
	}
	for k, v := range stats.ByDocument {
		fmt.Printf("  document   %-14s %d\n", k, v)
	}
	for k, v := range stats.ByExceptionCode {
		fmt.Printf("  exception  %-12s %d\n", k, v)
	}
	if stats.AvgMinConfidence != nil {
		fmt.Printf("avg min confidence: %.2f\n", *stats.AvgMinConfidence)
	}
}

func runExport(ctx context.Context, repo repository.ProcessingRepository, logger *slog.Logger, path string) {
	svc := export.NewService(repo, logger)
	data, err := svc.ExportDocumentsXLSX(ctx, repository.ListFilter{})
	if err != nil {
		printError("Error: exporting: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
}

func printResult(r *pipeline.Result) {
	fmt.Printf("%s  id=%d processing=%s document=%s\n", r.FileName, r.ProcessingID, r.ProcessingStatus, r.DocumentStatus)
	if r.MinConfidence != nil {
		fmt.Printf("  min confidence: %.2f\n", *r.MinConfidence)
	}
	if r.Exception != nil {
		fmt.Printf("  exception: %s (%s)\n", r.Exception.Code, r.Exception.Description)
	}
	fmt.Printf("  entities: %d total, %d unique\n", r.TotalEntities, r.UniqueEntityTypes)
	for _, mv := range r.Statistics {
		fmt.Printf("  multi-valued: %s x%d %v\n", mv.Name, mv.Count, mv.Values)
	}
}
