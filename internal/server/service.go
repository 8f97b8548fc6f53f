package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/gen/ent"
	invoicesv1 "github.com/si-akram/invoice-docai/gen/proto/invoices/v1"
	"github.com/si-akram/invoice-docai/internal/pipeline"
	"github.com/si-akram/invoice-docai/internal/repository"
)

type InvoiceService struct {
	invoicesv1.UnimplementedInvoiceServiceServer
	processor *pipeline.Processor
	repo      repository.ProcessingRepository
	logger    *zap.Logger
}

func NewInvoiceService(processor *pipeline.Processor, repo repository.ProcessingRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{processor: processor, repo: repo, logger: logger}
}

func (s *InvoiceService) ProcessDocument(ctx context.Context, req *invoicesv1.ProcessDocumentRequest) (*invoicesv1.ProcessDocumentResponse, error) {
	fileName := req.GetFileName()
	if fileName == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}

	result, err := s.processor.ProcessFile(ctx, fileName)
	if err != nil && result == nil {
		s.logger.Warn("process document failed", zap.String("file_name", fileName), zap.Error(err))
		return nil, status.Error(codes.Internal, "process document failed")
	}
	// A recorded failure still returns the document row so callers see the
	// exception code instead of a bare RPC error.
	rec, gerr := s.repo.GetByID(ctx, result.ProcessingID)
	if gerr != nil {
		s.logger.Warn("load processed document failed", zap.Int("processing_id", result.ProcessingID), zap.Error(gerr))
		return nil, status.Error(codes.Internal, "load processed document failed")
	}
	return &invoicesv1.ProcessDocumentResponse{Document: toPBDocument(rec)}, nil
}

func (s *InvoiceService) RevalidateDocument(ctx context.Context, req *invoicesv1.RevalidateDocumentRequest) (*invoicesv1.ProcessDocumentResponse, error) {
	id := int(req.GetProcessingId())
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "processing_id is required")
	}

	if _, err := s.processor.Revalidate(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Warn("revalidate failed", zap.Int("processing_id", id), zap.Error(err))
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, "load document failed")
	}
	return &invoicesv1.ProcessDocumentResponse{Document: toPBDocument(rec)}, nil
}

func (s *InvoiceService) GetDocument(ctx context.Context, req *invoicesv1.GetDocumentRequest) (*invoicesv1.GetDocumentResponse, error) {
	id := int(req.GetProcessingId())
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "processing_id is required")
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Warn("get document failed", zap.Int("processing_id", id), zap.Error(err))
		return nil, status.Error(codes.Internal, "get document failed")
	}
	rows, err := s.repo.GetEntities(ctx, id)
	if err != nil {
		s.logger.Warn("get entities failed", zap.Int("processing_id", id), zap.Error(err))
		return nil, status.Error(codes.Internal, "get entities failed")
	}

	out := make([]*invoicesv1.ExtractedEntity, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBEntity(row))
	}
	return &invoicesv1.GetDocumentResponse{Document: toPBDocument(rec), Entities: out}, nil
}

func (s *InvoiceService) ListDocuments(ctx context.Context, req *invoicesv1.ListDocumentsRequest) (*invoicesv1.ListDocumentsResponse, error) {
	filter := repository.ListFilter{
		ProcessingStatus: constants.ProcessingStatus(req.GetProcessingStatus()),
		DocumentStatus:   constants.DocumentStatus(req.GetDocumentStatus()),
		FileName:         req.GetFileName(),
		Limit:            int(req.GetLimit()),
	}
	recs, err := s.repo.ListDocuments(ctx, filter)
	if err != nil {
		s.logger.Warn("list documents failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list documents failed")
	}

	out := make([]*invoicesv1.Document, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toPBDocument(rec))
	}
	return &invoicesv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *InvoiceService) GetProcessingStats(ctx context.Context, _ *invoicesv1.GetProcessingStatsRequest) (*invoicesv1.GetProcessingStatsResponse, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.Warn("get stats failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "get stats failed")
	}

	resp := &invoicesv1.GetProcessingStatsResponse{
		Total:              int32(stats.Total),
		ByProcessingStatus: map[string]int32{},
		ByDocumentStatus:   map[string]int32{},
		ByExceptionCode:    map[string]int32{},
	}
	for k, v := range stats.ByProcessing {
		resp.ByProcessingStatus[string(k)] = int32(v)
	}
	for k, v := range stats.ByDocument {
		resp.ByDocumentStatus[string(k)] = int32(v)
	}
	for k, v := range stats.ByExceptionCode {
		resp.ByExceptionCode[k] = int32(v)
	}
	resp.AvgMinConfidence = stats.AvgMinConfidence
	return resp, nil
}
