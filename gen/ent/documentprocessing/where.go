// Code generated by ent, DO NOT EDIT.

package documentprocessing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldID, id))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldFileName, v))
}

// GcsPath applies equality check predicate on the "gcs_path" field. It's identical to GcsPathEQ.
func GcsPath(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldGcsPath, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldProcessingStatus, v))
}

// DocumentStatus applies equality check predicate on the "document_status" field. It's identical to DocumentStatusEQ.
func DocumentStatus(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldDocumentStatus, v))
}

// MinConfidence applies equality check predicate on the "min_confidence" field. It's identical to MinConfidenceEQ.
func MinConfidence(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldMinConfidence, v))
}

// ExceptionReasonCode applies equality check predicate on the "exception_reason_code" field. It's identical to ExceptionReasonCodeEQ.
func ExceptionReasonCode(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldExceptionReasonCode, v))
}

// ExceptionReasonDescription applies equality check predicate on the "exception_reason_description" field. It's identical to ExceptionReasonDescriptionEQ.
func ExceptionReasonDescription(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldExceptionReasonDescription, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldFileName, v))
}

// GcsPathEQ applies the EQ predicate on the "gcs_path" field.
func GcsPathEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldGcsPath, v))
}

// GcsPathNEQ applies the NEQ predicate on the "gcs_path" field.
func GcsPathNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldGcsPath, v))
}

// GcsPathIn applies the In predicate on the "gcs_path" field.
func GcsPathIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldGcsPath, vs...))
}

// GcsPathNotIn applies the NotIn predicate on the "gcs_path" field.
func GcsPathNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldGcsPath, vs...))
}

// GcsPathGT applies the GT predicate on the "gcs_path" field.
func GcsPathGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldGcsPath, v))
}

// GcsPathGTE applies the GTE predicate on the "gcs_path" field.
func GcsPathGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldGcsPath, v))
}

// GcsPathLT applies the LT predicate on the "gcs_path" field.
func GcsPathLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldGcsPath, v))
}

// GcsPathLTE applies the LTE predicate on the "gcs_path" field.
func GcsPathLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldGcsPath, v))
}

// GcsPathContains applies the Contains predicate on the "gcs_path" field.
func GcsPathContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldGcsPath, v))
}

// GcsPathHasPrefix applies the HasPrefix predicate on the "gcs_path" field.
func GcsPathHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldGcsPath, v))
}

// GcsPathHasSuffix applies the HasSuffix predicate on the "gcs_path" field.
func GcsPathHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldGcsPath, v))
}

// GcsPathEqualFold applies the EqualFold predicate on the "gcs_path" field.
func GcsPathEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldGcsPath, v))
}

// GcsPathContainsFold applies the ContainsFold predicate on the "gcs_path" field.
func GcsPathContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldGcsPath, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// DocumentStatusEQ applies the EQ predicate on the "document_status" field.
func DocumentStatusEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldDocumentStatus, v))
}

// DocumentStatusNEQ applies the NEQ predicate on the "document_status" field.
func DocumentStatusNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldDocumentStatus, v))
}

// DocumentStatusIn applies the In predicate on the "document_status" field.
func DocumentStatusIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldDocumentStatus, vs...))
}

// DocumentStatusNotIn applies the NotIn predicate on the "document_status" field.
func DocumentStatusNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldDocumentStatus, vs...))
}

// DocumentStatusGT applies the GT predicate on the "document_status" field.
func DocumentStatusGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldDocumentStatus, v))
}

// DocumentStatusGTE applies the GTE predicate on the "document_status" field.
func DocumentStatusGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldDocumentStatus, v))
}

// DocumentStatusLT applies the LT predicate on the "document_status" field.
func DocumentStatusLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldDocumentStatus, v))
}

// DocumentStatusLTE applies the LTE predicate on the "document_status" field.
func DocumentStatusLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldDocumentStatus, v))
}

// DocumentStatusContains applies the Contains predicate on the "document_status" field.
func DocumentStatusContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldDocumentStatus, v))
}

// DocumentStatusHasPrefix applies the HasPrefix predicate on the "document_status" field.
func DocumentStatusHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldDocumentStatus, v))
}

// DocumentStatusHasSuffix applies the HasSuffix predicate on the "document_status" field.
func DocumentStatusHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldDocumentStatus, v))
}

// DocumentStatusEqualFold applies the EqualFold predicate on the "document_status" field.
func DocumentStatusEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldDocumentStatus, v))
}

// DocumentStatusContainsFold applies the ContainsFold predicate on the "document_status" field.
func DocumentStatusContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldDocumentStatus, v))
}

// MinConfidenceEQ applies the EQ predicate on the "min_confidence" field.
func MinConfidenceEQ(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldMinConfidence, v))
}

// MinConfidenceNEQ applies the NEQ predicate on the "min_confidence" field.
func MinConfidenceNEQ(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldMinConfidence, v))
}

// MinConfidenceIn applies the In predicate on the "min_confidence" field.
func MinConfidenceIn(vs ...float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldMinConfidence, vs...))
}

// MinConfidenceNotIn applies the NotIn predicate on the "min_confidence" field.
func MinConfidenceNotIn(vs ...float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldMinConfidence, vs...))
}

// MinConfidenceGT applies the GT predicate on the "min_confidence" field.
func MinConfidenceGT(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldMinConfidence, v))
}

// MinConfidenceGTE applies the GTE predicate on the "min_confidence" field.
func MinConfidenceGTE(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldMinConfidence, v))
}

// MinConfidenceLT applies the LT predicate on the "min_confidence" field.
func MinConfidenceLT(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldMinConfidence, v))
}

// MinConfidenceLTE applies the LTE predicate on the "min_confidence" field.
func MinConfidenceLTE(v float64) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldMinConfidence, v))
}

// MinConfidenceIsNil applies the IsNil predicate on the "min_confidence" field.
func MinConfidenceIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldMinConfidence))
}

// MinConfidenceNotNil applies the NotNil predicate on the "min_confidence" field.
func MinConfidenceNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldMinConfidence))
}

// ExceptionReasonCodeEQ applies the EQ predicate on the "exception_reason_code" field.
func ExceptionReasonCodeEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeNEQ applies the NEQ predicate on the "exception_reason_code" field.
func ExceptionReasonCodeNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeIn applies the In predicate on the "exception_reason_code" field.
func ExceptionReasonCodeIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldExceptionReasonCode, vs...))
}

// ExceptionReasonCodeNotIn applies the NotIn predicate on the "exception_reason_code" field.
func ExceptionReasonCodeNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldExceptionReasonCode, vs...))
}

// ExceptionReasonCodeGT applies the GT predicate on the "exception_reason_code" field.
func ExceptionReasonCodeGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeGTE applies the GTE predicate on the "exception_reason_code" field.
func ExceptionReasonCodeGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeLT applies the LT predicate on the "exception_reason_code" field.
func ExceptionReasonCodeLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeLTE applies the LTE predicate on the "exception_reason_code" field.
func ExceptionReasonCodeLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeContains applies the Contains predicate on the "exception_reason_code" field.
func ExceptionReasonCodeContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeHasPrefix applies the HasPrefix predicate on the "exception_reason_code" field.
func ExceptionReasonCodeHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeHasSuffix applies the HasSuffix predicate on the "exception_reason_code" field.
func ExceptionReasonCodeHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeIsNil applies the IsNil predicate on the "exception_reason_code" field.
func ExceptionReasonCodeIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldExceptionReasonCode))
}

// ExceptionReasonCodeNotNil applies the NotNil predicate on the "exception_reason_code" field.
func ExceptionReasonCodeNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldExceptionReasonCode))
}

// ExceptionReasonCodeEqualFold applies the EqualFold predicate on the "exception_reason_code" field.
func ExceptionReasonCodeEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldExceptionReasonCode, v))
}

// ExceptionReasonCodeContainsFold applies the ContainsFold predicate on the "exception_reason_code" field.
func ExceptionReasonCodeContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldExceptionReasonCode, v))
}

// ExceptionReasonDescriptionEQ applies the EQ predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionNEQ applies the NEQ predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionIn applies the In predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldExceptionReasonDescription, vs...))
}

// ExceptionReasonDescriptionNotIn applies the NotIn predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldExceptionReasonDescription, vs...))
}

// ExceptionReasonDescriptionGT applies the GT predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionGTE applies the GTE predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionLT applies the LT predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionLTE applies the LTE predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionContains applies the Contains predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionHasPrefix applies the HasPrefix predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionHasSuffix applies the HasSuffix predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionIsNil applies the IsNil predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldExceptionReasonDescription))
}

// ExceptionReasonDescriptionNotNil applies the NotNil predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldExceptionReasonDescription))
}

// ExceptionReasonDescriptionEqualFold applies the EqualFold predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldExceptionReasonDescription, v))
}

// ExceptionReasonDescriptionContainsFold applies the ContainsFold predicate on the "exception_reason_description" field.
func ExceptionReasonDescriptionContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldExceptionReasonDescription, v))
}

// ExceptionEntitiesIsNil applies the IsNil predicate on the "exception_entities" field.
func ExceptionEntitiesIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldExceptionEntities))
}

// ExceptionEntitiesNotNil applies the NotNil predicate on the "exception_entities" field.
func ExceptionEntitiesNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldExceptionEntities))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RawProcessorOutputIsNil applies the IsNil predicate on the "raw_processor_output" field.
func RawProcessorOutputIsNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIsNull(FieldRawProcessorOutput))
}

// RawProcessorOutputNotNil applies the NotNil predicate on the "raw_processor_output" field.
func RawProcessorOutputNotNil() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotNull(FieldRawProcessorOutput))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEntities applies the HasEdge predicate on the "entities" edge.
func HasEntities() predicate.DocumentProcessing {
	return predicate.DocumentProcessing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitiesWith applies the HasEdge predicate on the "entities" edge with a given conditions (other predicates).
func HasEntitiesWith(preds ...predicate.ExtractedEntity) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(func(s *sql.Selector) {
		step := newEntitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentProcessing) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentProcessing) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentProcessing) predicate.DocumentProcessing {
	return predicate.DocumentProcessing(sql.NotPredicates(p))
}
