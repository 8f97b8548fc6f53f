// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/si-akram/invoice-docai/db/ent/schema"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentprocessingFields := schema.DocumentProcessing{}.Fields()
	_ = documentprocessingFields
	// documentprocessingDescFileName is the schema descriptor for file_name field.
	documentprocessingDescFileName := documentprocessingFields[0].Descriptor()
	// documentprocessing.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	documentprocessing.FileNameValidator = documentprocessingDescFileName.Validators[0].(func(string) error)
	// documentprocessingDescGcsPath is the schema descriptor for gcs_path field.
	documentprocessingDescGcsPath := documentprocessingFields[1].Descriptor()
	// documentprocessing.GcsPathValidator is a validator for the "gcs_path" field. It is called by the builders before save.
	documentprocessing.GcsPathValidator = documentprocessingDescGcsPath.Validators[0].(func(string) error)
	// documentprocessingDescProcessingStatus is the schema descriptor for processing_status field.
	documentprocessingDescProcessingStatus := documentprocessingFields[2].Descriptor()
	// documentprocessing.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	documentprocessing.DefaultProcessingStatus = documentprocessingDescProcessingStatus.Default.(string)
	// documentprocessing.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	documentprocessing.ProcessingStatusValidator = documentprocessingDescProcessingStatus.Validators[0].(func(string) error)
	// documentprocessingDescDocumentStatus is the schema descriptor for document_status field.
	documentprocessingDescDocumentStatus := documentprocessingFields[3].Descriptor()
	// documentprocessing.DefaultDocumentStatus holds the default value on creation for the document_status field.
	documentprocessing.DefaultDocumentStatus = documentprocessingDescDocumentStatus.Default.(string)
	// documentprocessing.DocumentStatusValidator is a validator for the "document_status" field. It is called by the builders before save.
	documentprocessing.DocumentStatusValidator = documentprocessingDescDocumentStatus.Validators[0].(func(string) error)
	// documentprocessingDescCreatedAt is the schema descriptor for created_at field.
	documentprocessingDescCreatedAt := documentprocessingFields[10].Descriptor()
	// documentprocessing.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentprocessing.DefaultCreatedAt = documentprocessingDescCreatedAt.Default.(func() time.Time)
	// documentprocessingDescUpdatedAt is the schema descriptor for updated_at field.
	documentprocessingDescUpdatedAt := documentprocessingFields[11].Descriptor()
	// documentprocessing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentprocessing.DefaultUpdatedAt = documentprocessingDescUpdatedAt.Default.(func() time.Time)
	// documentprocessing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentprocessing.UpdateDefaultUpdatedAt = documentprocessingDescUpdatedAt.UpdateDefault.(func() time.Time)
	extractedentityFields := schema.ExtractedEntity{}.Fields()
	_ = extractedentityFields
	// extractedentityDescEntityName is the schema descriptor for entity_name field.
	extractedentityDescEntityName := extractedentityFields[1].Descriptor()
	// extractedentity.EntityNameValidator is a validator for the "entity_name" field. It is called by the builders before save.
	extractedentity.EntityNameValidator = extractedentityDescEntityName.Validators[0].(func(string) error)
	// extractedentityDescCreatedAt is the schema descriptor for created_at field.
	extractedentityDescCreatedAt := extractedentityFields[6].Descriptor()
	// extractedentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedentity.DefaultCreatedAt = extractedentityDescCreatedAt.Default.(func() time.Time)
}
