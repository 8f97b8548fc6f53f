// Code generated by ent, DO NOT EDIT.

package extractedentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldID, id))
}

// ProcessingID applies equality check predicate on the "processing_id" field. It's identical to ProcessingIDEQ.
func ProcessingID(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldProcessingID, v))
}

// EntityName applies equality check predicate on the "entity_name" field. It's identical to EntityNameEQ.
func EntityName(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldEntityName, v))
}

// EntityValue applies equality check predicate on the "entity_value" field. It's identical to EntityValueEQ.
func EntityValue(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldEntityValue, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldConfidenceScore, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldPageNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessingIDEQ applies the EQ predicate on the "processing_id" field.
func ProcessingIDEQ(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldProcessingID, v))
}

// ProcessingIDNEQ applies the NEQ predicate on the "processing_id" field.
func ProcessingIDNEQ(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldProcessingID, v))
}

// ProcessingIDIn applies the In predicate on the "processing_id" field.
func ProcessingIDIn(vs ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldProcessingID, vs...))
}

// ProcessingIDNotIn applies the NotIn predicate on the "processing_id" field.
func ProcessingIDNotIn(vs ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldProcessingID, vs...))
}

// EntityNameEQ applies the EQ predicate on the "entity_name" field.
func EntityNameEQ(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldEntityName, v))
}

// EntityNameNEQ applies the NEQ predicate on the "entity_name" field.
func EntityNameNEQ(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldEntityName, v))
}

// EntityNameIn applies the In predicate on the "entity_name" field.
func EntityNameIn(vs ...string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldEntityName, vs...))
}

// EntityNameNotIn applies the NotIn predicate on the "entity_name" field.
func EntityNameNotIn(vs ...string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldEntityName, vs...))
}

// EntityNameGT applies the GT predicate on the "entity_name" field.
func EntityNameGT(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldEntityName, v))
}

// EntityNameGTE applies the GTE predicate on the "entity_name" field.
func EntityNameGTE(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldEntityName, v))
}

// EntityNameLT applies the LT predicate on the "entity_name" field.
func EntityNameLT(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldEntityName, v))
}

// EntityNameLTE applies the LTE predicate on the "entity_name" field.
func EntityNameLTE(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldEntityName, v))
}

// EntityNameContains applies the Contains predicate on the "entity_name" field.
func EntityNameContains(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldContains(FieldEntityName, v))
}

// EntityNameHasPrefix applies the HasPrefix predicate on the "entity_name" field.
func EntityNameHasPrefix(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldHasPrefix(FieldEntityName, v))
}

// EntityNameHasSuffix applies the HasSuffix predicate on the "entity_name" field.
func EntityNameHasSuffix(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldHasSuffix(FieldEntityName, v))
}

// EntityNameEqualFold applies the EqualFold predicate on the "entity_name" field.
func EntityNameEqualFold(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEqualFold(FieldEntityName, v))
}

// EntityNameContainsFold applies the ContainsFold predicate on the "entity_name" field.
func EntityNameContainsFold(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldContainsFold(FieldEntityName, v))
}

// EntityValueEQ applies the EQ predicate on the "entity_value" field.
func EntityValueEQ(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldEntityValue, v))
}

// EntityValueNEQ applies the NEQ predicate on the "entity_value" field.
func EntityValueNEQ(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldEntityValue, v))
}

// EntityValueIn applies the In predicate on the "entity_value" field.
func EntityValueIn(vs ...string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldEntityValue, vs...))
}

// EntityValueNotIn applies the NotIn predicate on the "entity_value" field.
func EntityValueNotIn(vs ...string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldEntityValue, vs...))
}

// EntityValueGT applies the GT predicate on the "entity_value" field.
func EntityValueGT(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldEntityValue, v))
}

// EntityValueGTE applies the GTE predicate on the "entity_value" field.
func EntityValueGTE(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldEntityValue, v))
}

// EntityValueLT applies the LT predicate on the "entity_value" field.
func EntityValueLT(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldEntityValue, v))
}

// EntityValueLTE applies the LTE predicate on the "entity_value" field.
func EntityValueLTE(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldEntityValue, v))
}

// EntityValueContains applies the Contains predicate on the "entity_value" field.
func EntityValueContains(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldContains(FieldEntityValue, v))
}

// EntityValueHasPrefix applies the HasPrefix predicate on the "entity_value" field.
func EntityValueHasPrefix(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldHasPrefix(FieldEntityValue, v))
}

// EntityValueHasSuffix applies the HasSuffix predicate on the "entity_value" field.
func EntityValueHasSuffix(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldHasSuffix(FieldEntityValue, v))
}

// EntityValueIsNil applies the IsNil predicate on the "entity_value" field.
func EntityValueIsNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIsNull(FieldEntityValue))
}

// EntityValueNotNil applies the NotNil predicate on the "entity_value" field.
func EntityValueNotNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotNull(FieldEntityValue))
}

// EntityValueEqualFold applies the EqualFold predicate on the "entity_value" field.
func EntityValueEqualFold(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEqualFold(FieldEntityValue, v))
}

// EntityValueContainsFold applies the ContainsFold predicate on the "entity_value" field.
func EntityValueContainsFold(v string) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldContainsFold(FieldEntityValue, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotNull(FieldConfidenceScore))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldPageNumber, v))
}

// PageNumberIsNil applies the IsNil predicate on the "page_number" field.
func PageNumberIsNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIsNull(FieldPageNumber))
}

// PageNumberNotNil applies the NotNil predicate on the "page_number" field.
func PageNumberNotNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotNull(FieldPageNumber))
}

// BoundingBoxIsNil applies the IsNil predicate on the "bounding_box" field.
func BoundingBoxIsNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIsNull(FieldBoundingBox))
}

// BoundingBoxNotNil applies the NotNil predicate on the "bounding_box" field.
func BoundingBoxNotNil() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotNull(FieldBoundingBox))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProcessing applies the HasEdge predicate on the "processing" edge.
func HasProcessing() predicate.ExtractedEntity {
	return predicate.ExtractedEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessingTable, ProcessingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessingWith applies the HasEdge predicate on the "processing" edge with a given conditions (other predicates).
func HasProcessingWith(preds ...predicate.DocumentProcessing) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(func(s *sql.Selector) {
		step := newProcessingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedEntity) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedEntity) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedEntity) predicate.ExtractedEntity {
	return predicate.ExtractedEntity(sql.NotPredicates(p))
}
