package validation

import (
	"fmt"
	"strings"

	"github.com/si-akram/invoice-docai/constants"
)

// LowConfidenceEntity is one normalized entry of the exception payload.
// Confidence is null when the offender was reported by name only.
type LowConfidenceEntity struct {
	Name       string   `json:"name"`
	Confidence *float64 `json:"confidence"`
	Threshold  float64  `json:"threshold"`
}

// ExceptionEntities is the structured payload stored in
// document_processing.exception_entities. Missing and LowConfidence are
// always present, possibly empty; the min-confidence fields are attached
// whenever a minimum was known at classification time.
type ExceptionEntities struct {
	Missing             []string              `json:"missing"`
	LowConfidence       []LowConfidenceEntity `json:"low_confidence"`
	MinConfidence       *float64              `json:"min_confidence,omitempty"`
	ConfidenceThreshold *float64              `json:"confidence_threshold,omitempty"`
	Reason              string                `json:"reason,omitempty"`
}

// ExceptionDetail explains one non-clean outcome: the symbolic reason, the
// short code persisted to the database, a description naming the offending
// fields, and the structured payload.
type ExceptionDetail struct {
	Reason      constants.ExceptionReason
	Code        string
	Description string
	Entities    ExceptionEntities
}

// Classify maps a validation outcome onto the exception taxonomy. The cases
// form a priority ladder and the first match wins:
//
//  1. missing and low-confidence findings together -> MIXED_VALIDATION
//  2. missing only -> MISSING_ENTITIES
//  3. low-confidence records only -> LOW_CONFIDENCE
//  4. no findings, but the raw minimum undercuts the threshold ->
//     LOW_CONFIDENCE tagged min_confidence_below_threshold
//  5. otherwise nil: the document is clean.
func Classify(out Outcome, cfg Config) *ExceptionDetail {
	entities := ExceptionEntities{
		Missing:       []string{},
		LowConfidence: normalizeLowConfidence(out.LowConfidenceAny, cfg.ConfidenceThreshold),
	}
	entities.Missing = append(entities.Missing, out.Missing...)
	if out.MinConfidence != nil {
		mc := *out.MinConfidence
		th := cfg.ConfidenceThreshold
		entities.MinConfidence = &mc
		entities.ConfidenceThreshold = &th
	}

	hasMissing := len(out.Missing) > 0
	hasLowConf := len(out.LowConfidenceAny) > 0

	var reason constants.ExceptionReason
	var desc string
	switch {
	case hasMissing && hasLowConf:
		reason = constants.ReasonMixedValidation
		desc = fmt.Sprintf("Missing entities: %s; low confidence entities: %s",
			strings.Join(out.Missing, ", "), strings.Join(lowConfidenceNames(out.LowConfidenceAny), ", "))
	case hasMissing:
		reason = constants.ReasonMissingEntities
		desc = fmt.Sprintf("Missing required entities: %s", strings.Join(out.Missing, ", "))
	case hasLowConf:
		reason = constants.ReasonLowConfidence
		desc = fmt.Sprintf("Low confidence entities (< %.2f): %s",
			cfg.ConfidenceThreshold, strings.Join(lowConfidenceNames(out.LowConfidenceAny), ", "))
	case out.MinConfidence != nil && *out.MinConfidence < cfg.ConfidenceThreshold:
		reason = constants.ReasonLowConfidence
		desc = fmt.Sprintf("Minimum confidence (%.2f) below threshold (%.2f)",
			*out.MinConfidence, cfg.ConfidenceThreshold)
		entities.Reason = "min_confidence_below_threshold"
	default:
		return nil
	}

	return &ExceptionDetail{
		Reason:      reason,
		Code:        reason.Code(),
		Description: desc,
		Entities:    entities,
	}
}

// FailureDetail builds the exception detail recorded for a pipeline failure
// (network, auth, missing file, and so on). The payload carries no entity
// findings because validation never ran.
func FailureDetail(reason constants.ExceptionReason) *ExceptionDetail {
	return &ExceptionDetail{
		Reason:      reason,
		Code:        reason.Code(),
		Description: reason.Description(),
		Entities: ExceptionEntities{
			Missing:       []string{},
			LowConfidence: []LowConfidenceEntity{},
		},
	}
}

// normalizeLowConfidence converts low-confidence findings into the payload
// triple {name, confidence, threshold}. Callers that only know a name can
// use NormalizeNames instead; both shapes normalize to the same triple.
func normalizeLowConfidence(recs []LowConfidenceRecord, threshold float64) []LowConfidenceEntity {
	out := make([]LowConfidenceEntity, 0, len(recs))
	for _, rec := range recs {
		c := rec.Confidence
		out = append(out, LowConfidenceEntity{Name: rec.Name, Confidence: &c, Threshold: threshold})
	}
	return out
}

// NormalizeNames builds payload entries for offenders known only by name,
// with a null confidence.
func NormalizeNames(names []string, threshold float64) []LowConfidenceEntity {
	out := make([]LowConfidenceEntity, 0, len(names))
	for _, name := range names {
		out = append(out, LowConfidenceEntity{Name: name, Confidence: nil, Threshold: threshold})
	}
	return out
}

func lowConfidenceNames(recs []LowConfidenceRecord) []string {
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name)
	}
	return names
}
