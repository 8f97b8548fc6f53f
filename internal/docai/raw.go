package docai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/si-akram/invoice-docai/internal/entity"
)

// rawPayload is the audit shape persisted in
// document_processing.raw_processor_output.
type rawPayload struct {
	Entities []entity.EntityRecord `json:"entities"`
}

// rawOutputSchema constrains the overall payload shape. Per-record required
// keys are checked leniently afterwards so one malformed record is skipped,
// not the whole payload rejected.
func rawOutputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"entities"},
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"value":       map[string]any{"type": "string"},
						"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
						"page_number": map[string]any{"type": "integer", "minimum": 0},
					},
				},
			},
		},
	}
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseRawOutput decodes a stored raw payload so a past extraction can be
// re-validated without calling the service again. Records missing a name are
// skipped with a warning; they never abort the payload.
func ParseRawOutput(raw []byte, log *slog.Logger) ([]entity.EntityRecord, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := validateAgainstSchema(rawOutputSchema(), raw); err != nil {
		return nil, fmt.Errorf("raw output: %w", err)
	}
	var payload rawPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode raw output: %w", err)
	}
	records := make([]entity.EntityRecord, 0, len(payload.Entities))
	for _, rec := range payload.Entities {
		if rec.Name == "" {
			log.Warn("skipping raw entity without a name", "value", rec.Value)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
