package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/internal/entity"
)

func testConfig() Config {
	return Config{
		RequiredEntities:    []string{"invoice_number", "vendor_name"},
		ConfidenceThreshold: 0.70,
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	out := Validate(Resolve([]entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.95),
	}), testConfig())

	assert.Equal(t, []string{"vendor_name"}, out.Missing)
	assert.Empty(t, out.LowConfidenceRequired)
	assert.Empty(t, out.LowConfidenceAny)
}

func TestValidate_ThresholdIsExclusive(t *testing.T) {
	cfg := testConfig()

	t.Run("equal to threshold passes", func(t *testing.T) {
		out := Validate(Resolve([]entity.EntityRecord{
			rec("invoice_number", "INV-1", 0.70),
			rec("vendor_name", "Acme", 0.70),
		}), cfg)
		assert.Empty(t, out.Missing)
		assert.Empty(t, out.LowConfidenceRequired)
		assert.Empty(t, out.LowConfidenceAny)
	})

	t.Run("strictly below flags", func(t *testing.T) {
		out := Validate(Resolve([]entity.EntityRecord{
			rec("invoice_number", "INV-1", 0.6999),
			rec("vendor_name", "Acme", 0.90),
		}), cfg)
		require.Len(t, out.LowConfidenceRequired, 1)
		assert.Equal(t, "invoice_number", out.LowConfidenceRequired[0].Name)
		require.Len(t, out.LowConfidenceAny, 1)
	})
}

func TestValidate_RawScanIsDuplicateSensitive(t *testing.T) {
	// A strong best value must not mask a weak duplicate of the same name.
	out := Validate(Resolve([]entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.95),
		rec("invoice_number", "INV-9", 0.40),
		rec("vendor_name", "Acme", 0.90),
	}), testConfig())

	assert.Empty(t, out.LowConfidenceRequired, "best value is above threshold")
	require.Len(t, out.LowConfidenceAny, 1)
	assert.Equal(t, "invoice_number", out.LowConfidenceAny[0].Name)
	assert.Equal(t, "INV-9", out.LowConfidenceAny[0].Value)
	assert.InDelta(t, 0.40, out.LowConfidenceAny[0].Confidence, 1e-9)
}

func TestValidate_ScansNonRequiredNames(t *testing.T) {
	out := Validate(Resolve([]entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.95),
		rec("vendor_name", "Acme", 0.90),
		rec("line_item", "widgets", 0.30),
	}), testConfig())

	require.Len(t, out.LowConfidenceAny, 1)
	assert.Equal(t, "line_item", out.LowConfidenceAny[0].Name)
}

func TestValidate_MinConfidenceIsTrueMinimum(t *testing.T) {
	records := []entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.95),
		rec("vendor_name", "Acme", 0.72),
		rec("line_item", "widgets", 0.81),
	}
	out := Validate(Resolve(records), testConfig())
	require.NotNil(t, out.MinConfidence)
	assert.InDelta(t, 0.72, *out.MinConfidence, 1e-9)

	// Order independence: reversing the input gives the same minimum.
	reversed := []entity.EntityRecord{records[2], records[1], records[0]}
	out2 := Validate(Resolve(reversed), testConfig())
	require.NotNil(t, out2.MinConfidence)
	assert.Equal(t, *out.MinConfidence, *out2.MinConfidence)
}

func TestValidate_NoEntities(t *testing.T) {
	out := Validate(Resolve(nil), testConfig())
	assert.Equal(t, []string{"invoice_number", "vendor_name"}, out.Missing)
	assert.Nil(t, out.MinConfidence)
}

func TestValidate_IsPure(t *testing.T) {
	records := []entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.50),
		rec("line_item", "widgets", 0.30),
	}
	cfg := testConfig()
	first := Validate(Resolve(records), cfg)
	second := Validate(Resolve(records), cfg)
	assert.Equal(t, first, second)
}
