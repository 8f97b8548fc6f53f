package server

import (
	"time"

	invoicesv1 "github.com/si-akram/invoice-docai/gen/proto/invoices/v1"
	"github.com/si-akram/invoice-docai/internal/entity"
)

func toPBDocument(rec *entity.ProcessingRecord) *invoicesv1.Document {
	doc := &invoicesv1.Document{
		Id:               int32(rec.ID),
		FileName:         rec.FileName,
		GcsPath:          rec.GCSPath,
		ProcessingStatus: string(rec.ProcessingStatus),
		DocumentStatus:   string(rec.DocumentStatus),
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339Nano),
	}
	doc.MinConfidence = rec.MinConfidence
	if rec.ExceptionReasonCode != nil {
		doc.ExceptionReasonCode = *rec.ExceptionReasonCode
	}
	if rec.ExceptionReasonDescription != nil {
		doc.ExceptionReasonDescription = *rec.ExceptionReasonDescription
	}
	if len(rec.ExceptionEntities) > 0 {
		doc.ExceptionEntities = string(rec.ExceptionEntities)
	}
	if rec.ErrorMessage != nil {
		doc.ErrorMessage = *rec.ErrorMessage
	}
	return doc
}

func toPBEntity(row *entity.ExtractedEntityRow) *invoicesv1.ExtractedEntity {
	e := &invoicesv1.ExtractedEntity{
		Id:              int32(row.ID),
		EntityName:      row.EntityName,
		EntityValue:     row.EntityValue,
		ConfidenceScore: row.ConfidenceScore,
	}
	if row.PageNumber != nil {
		page := int32(*row.PageNumber)
		e.PageNumber = &page
	}
	if len(row.BoundingBox) > 0 {
		e.BoundingBox = string(row.BoundingBox)
	}
	return e
}
