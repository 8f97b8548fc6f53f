package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/constants"
)

func ptr(f float64) *float64 { return &f }

func TestClassify_PriorityLadder(t *testing.T) {
	cfg := testConfig()

	t.Run("missing and low confidence is always mixed", func(t *testing.T) {
		detail := Classify(Outcome{
			Missing:          []string{"vendor_name"},
			LowConfidenceAny: []LowConfidenceRecord{{Name: "invoice_number", Confidence: 0.50, Value: "INV-1"}},
			MinConfidence:    ptr(0.50),
		}, cfg)
		require.NotNil(t, detail)
		assert.Equal(t, constants.ReasonMixedValidation, detail.Reason)
		assert.Equal(t, "MIX_VAL", detail.Code)
		assert.Contains(t, detail.Description, "vendor_name")
		assert.Contains(t, detail.Description, "invoice_number")
	})

	t.Run("missing only", func(t *testing.T) {
		detail := Classify(Outcome{Missing: []string{"vendor_name"}}, cfg)
		require.NotNil(t, detail)
		assert.Equal(t, constants.ReasonMissingEntities, detail.Reason)
		assert.Equal(t, []string{"vendor_name"}, detail.Entities.Missing)
	})

	t.Run("low confidence only", func(t *testing.T) {
		detail := Classify(Outcome{
			LowConfidenceAny: []LowConfidenceRecord{{Name: "invoice_date", Confidence: 0.50, Value: "2024-01-01"}},
			MinConfidence:    ptr(0.50),
		}, cfg)
		require.NotNil(t, detail)
		assert.Equal(t, constants.ReasonLowConfidence, detail.Reason)
		assert.Empty(t, detail.Entities.Reason)
		require.Len(t, detail.Entities.LowConfidence, 1)
		lc := detail.Entities.LowConfidence[0]
		assert.Equal(t, "invoice_date", lc.Name)
		require.NotNil(t, lc.Confidence)
		assert.InDelta(t, 0.50, *lc.Confidence, 1e-9)
		assert.InDelta(t, 0.70, lc.Threshold, 1e-9)
	})

	t.Run("minimum below threshold with no findings", func(t *testing.T) {
		detail := Classify(Outcome{MinConfidence: ptr(0.65)}, cfg)
		require.NotNil(t, detail)
		assert.Equal(t, constants.ReasonLowConfidence, detail.Reason)
		assert.Equal(t, "min_confidence_below_threshold", detail.Entities.Reason)
		require.NotNil(t, detail.Entities.MinConfidence)
		assert.InDelta(t, 0.65, *detail.Entities.MinConfidence, 1e-9)
		require.NotNil(t, detail.Entities.ConfidenceThreshold)
	})

	t.Run("clean document yields nil", func(t *testing.T) {
		assert.Nil(t, Classify(Outcome{MinConfidence: ptr(0.90)}, cfg))
		assert.Nil(t, Classify(Outcome{}, cfg))
	})
}

func TestClassify_PayloadAlwaysCarriesBothLists(t *testing.T) {
	detail := Classify(Outcome{Missing: []string{"po_number"}}, testConfig())
	require.NotNil(t, detail)

	raw, err := json.Marshal(detail.Entities)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "missing")
	assert.Contains(t, payload, "low_confidence")
	assert.NotContains(t, payload, "min_confidence", "no minimum was supplied")
}

func TestNormalizeNames(t *testing.T) {
	entries := NormalizeNames([]string{"invoice_date"}, 0.70)
	require.Len(t, entries, 1)
	assert.Equal(t, "invoice_date", entries[0].Name)
	assert.Nil(t, entries[0].Confidence)

	raw, err := json.Marshal(entries[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"invoice_date","confidence":null,"threshold":0.7}`, string(raw))
}
