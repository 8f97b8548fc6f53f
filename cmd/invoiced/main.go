package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"cloud.google.com/go/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	invoicesv1 "github.com/si-akram/invoice-docai/gen/proto/invoices/v1"
	"github.com/si-akram/invoice-docai/internal/common"
	"github.com/si-akram/invoice-docai/internal/docai"
	"github.com/si-akram/invoice-docai/internal/gcs"
	"github.com/si-akram/invoice-docai/internal/pipeline"
	"github.com/si-akram/invoice-docai/internal/repository"
	"github.com/si-akram/invoice-docai/internal/server"
	"github.com/si-akram/invoice-docai/internal/validation"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Env
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		log.Fatal("DB_URL env var is required")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// GCP clients
	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		log.Fatalf("storage client: %v", err)
	}
	defer storageClient.Close()

	extractor, err := docai.NewClient(ctx, docai.Config{
		ProjectID:   cfg.GCP.ProjectID,
		Location:    cfg.GCP.Location,
		ProcessorID: cfg.GCP.ProcessorID,
	}, slogger)
	if err != nil {
		log.Fatalf("documentai client: %v", err)
	}
	defer extractor.Close()

	objects := gcs.NewManager(storageClient, gcs.Config{
		Bucket:          cfg.Storage.Bucket,
		InputFolder:     cfg.Storage.InputFolder,
		ProcessedFolder: cfg.Storage.ProcessedFolder,
		FailedFolder:    cfg.Storage.FailedFolder,
	}, slogger)

	repo := repository.NewProcessingRepository(entc, slogger)
	processor := &pipeline.Processor{
		Logger: slogger,
		Cfg: validation.Config{
			RequiredEntities:    cfg.Validation.RequiredEntities,
			ConfidenceThreshold: cfg.Validation.ConfidenceThreshold,
		},
		Extractor: extractor,
		Objects:   objects,
		Records:   repo,
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewInvoiceService(processor, repo, logger)
	invoicesv1.RegisterInvoiceServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
