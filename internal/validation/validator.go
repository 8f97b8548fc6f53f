package validation

import "github.com/si-akram/invoice-docai/constants"

// Config carries the validation constants. It is passed explicitly into the
// resolver/validator/classifier so tests can override the field set and
// threshold without process-wide state.
type Config struct {
	RequiredEntities    []string
	ConfidenceThreshold float64
}

// DefaultConfig returns the production field set and threshold.
func DefaultConfig() Config {
	return Config{
		RequiredEntities:    constants.RequiredEntities,
		ConfidenceThreshold: constants.MinConfidenceThreshold,
	}
}

// FieldConfidence pairs a required name with the confidence of its best value.
type FieldConfidence struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// LowConfidenceRecord is one raw record whose confidence fell under the
// threshold. The same name can appear several times when several of its
// values are individually weak.
type LowConfidenceRecord struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Value      string  `json:"value"`
}

// Outcome is the validation result. Findings are data, never errors: a
// document full of problems still validates cleanly in the Go sense.
type Outcome struct {
	Missing               []string
	LowConfidenceRequired []FieldConfidence
	LowConfidenceAny      []LowConfidenceRecord
	MinConfidence         *float64
}

// Validate checks the required field set against a resolution and scans
// every admitted record for sub-threshold confidence. A confidence equal to
// the threshold passes; only strictly lower flags.
func Validate(res Resolution, cfg Config) Outcome {
	var out Outcome

	for _, name := range cfg.RequiredEntities {
		grp, ok := res.ByName[name]
		if !ok {
			out.Missing = append(out.Missing, name)
			continue
		}
		if grp.Best.Confidence < cfg.ConfidenceThreshold {
			out.LowConfidenceRequired = append(out.LowConfidenceRequired, FieldConfidence{
				Name:       name,
				Confidence: grp.Best.Confidence,
			})
		}
	}

	// The raw scan is deliberately duplicate-sensitive: a strong best value
	// does not excuse a weak duplicate of the same name, and it covers every
	// extracted name, required or not.
	for _, name := range res.Order {
		for _, rec := range res.ByName[name].Records {
			if rec.Confidence < cfg.ConfidenceThreshold {
				out.LowConfidenceAny = append(out.LowConfidenceAny, LowConfidenceRecord{
					Name:       rec.Name,
					Confidence: rec.Confidence,
					Value:      rec.Value,
				})
			}
			if out.MinConfidence == nil || rec.Confidence < *out.MinConfidence {
				c := rec.Confidence
				out.MinConfidence = &c
			}
		}
	}

	return out
}
