package docai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawOutput_RoundTrip(t *testing.T) {
	raw := []byte(`{
		"entities": [
			{"name": "invoice_number", "value": "INV-1", "confidence": 0.95, "page_number": 0},
			{"name": "vendor_name", "value": "Acme Corp", "confidence": 0.88,
			 "bounding_box": {"vertices": [{"x": 10, "y": 20}], "normalized_vertices": [{"x": 0.1, "y": 0.2}]}}
		]
	}`)

	records, err := ParseRawOutput(raw, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "invoice_number", records[0].Name)
	require.NotNil(t, records[0].PageNumber)
	assert.Equal(t, 0, *records[0].PageNumber)

	require.NotNil(t, records[1].BoundingBox)
	assert.InDelta(t, 10, records[1].BoundingBox.Vertices[0].X, 1e-9)
	assert.InDelta(t, 0.2, records[1].BoundingBox.NormalizedVertices[0].Y, 1e-9)
}

func TestParseRawOutput_SkipsNamelessRecords(t *testing.T) {
	raw := []byte(`{
		"entities": [
			{"value": "orphan", "confidence": 0.90},
			{"name": "po_number", "value": "PO-7", "confidence": 0.80}
		]
	}`)

	records, err := ParseRawOutput(raw, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "po_number", records[0].Name)
}

func TestParseRawOutput_RejectsWrongShape(t *testing.T) {
	_, err := ParseRawOutput([]byte(`{"entities": "not-a-list"}`), nil)
	assert.Error(t, err)

	_, err = ParseRawOutput([]byte(`{"records": []}`), nil)
	assert.Error(t, err)

	_, err = ParseRawOutput([]byte(`{"entities": [{"name": "x", "confidence": 1.5}]}`), nil)
	assert.Error(t, err, "confidence outside [0,1]")
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 0.95, round2(0.94999), 1e-9)
	assert.InDelta(t, 0.7, round2(0.701), 1e-9)
	assert.InDelta(t, 1.0, round2(0.999), 1e-9)
}
