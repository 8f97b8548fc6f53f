package docai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"github.com/si-akram/invoice-docai/internal/entity"
)

// Config identifies the Document AI processor to call.
type Config struct {
	ProjectID   string
	Location    string
	ProcessorID string
}

// Client wraps the Document AI processor service.
type Client struct {
	client        *documentai.DocumentProcessorClient
	processorName string
	log           *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}
	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
	c, err := documentai.NewDocumentProcessorClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("documentai client: %w", err)
	}
	name := fmt.Sprintf("projects/%s/locations/%s/processors/%s", cfg.ProjectID, cfg.Location, cfg.ProcessorID)
	log.Info("documentai client initialized", "processor", name)
	return &Client{client: c, processorName: name, log: log}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ProcessDocument runs the processor on a PDF already sitting in GCS and
// maps the response entities into records. Confidence is rounded to two
// decimals here so classification sees exactly what will be persisted.
func (c *Client) ProcessDocument(ctx context.Context, gcsURI string) (*ExtractionResult, error) {
	req := &documentaipb.ProcessRequest{
		Name: c.processorName,
		Source: &documentaipb.ProcessRequest_GcsDocument{
			GcsDocument: &documentaipb.GcsDocument{
				GcsUri:   gcsURI,
				MimeType: "application/pdf",
			},
		},
	}

	resp, err := c.client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("documentai process %s: %w", gcsURI, err)
	}

	records := entityRecords(resp.GetDocument())
	raw, err := json.Marshal(rawPayload{Entities: records})
	if err != nil {
		return nil, fmt.Errorf("encode raw output: %w", err)
	}

	c.log.Info("documentai processed document", "gcs_uri", gcsURI, "entities", len(records))
	return &ExtractionResult{Entities: records, RawOutput: raw}, nil
}

func entityRecords(doc *documentaipb.Document) []entity.EntityRecord {
	ents := doc.GetEntities()
	records := make([]entity.EntityRecord, 0, len(ents))
	for _, e := range ents {
		rec := entity.EntityRecord{
			Name:       e.GetType(),
			Value:      e.GetMentionText(),
			Confidence: round2(float64(e.GetConfidence())),
		}
		if refs := e.GetPageAnchor().GetPageRefs(); len(refs) > 0 {
			ref := refs[0]
			page := int(ref.GetPage())
			rec.PageNumber = &page
			if poly := ref.GetBoundingPoly(); poly != nil {
				rec.BoundingBox = boundingBox(poly)
			}
		}
		records = append(records, rec)
	}
	return records
}

func boundingBox(poly *documentaipb.BoundingPoly) *entity.BoundingBox {
	box := &entity.BoundingBox{
		Vertices:           make([]entity.Vertex, 0, len(poly.GetVertices())),
		NormalizedVertices: make([]entity.Vertex, 0, len(poly.GetNormalizedVertices())),
	}
	for _, v := range poly.GetVertices() {
		box.Vertices = append(box.Vertices, entity.Vertex{X: float64(v.GetX()), Y: float64(v.GetY())})
	}
	for _, v := range poly.GetNormalizedVertices() {
		box.NormalizedVertices = append(box.NormalizedVertices, entity.Vertex{X: float64(v.GetX()), Y: float64(v.GetY())})
	}
	if len(box.Vertices) == 0 && len(box.NormalizedVertices) == 0 {
		return nil
	}
	return box
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
