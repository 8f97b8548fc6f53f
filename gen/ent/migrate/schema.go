// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentProcessingColumns holds the columns for the "document_processing" table.
	DocumentProcessingColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "gcs_path", Type: field.TypeString},
		{Name: "processing_status", Type: field.TypeString, Default: "PROCESSING"},
		{Name: "document_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "min_confidence", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "decimal(3,2)"}},
		{Name: "exception_reason_code", Type: field.TypeString, Nullable: true},
		{Name: "exception_reason_description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "exception_entities", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "raw_processor_output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentProcessingTable holds the schema information for the "document_processing" table.
	DocumentProcessingTable = &schema.Table{
		Name:       "document_processing",
		Columns:    DocumentProcessingColumns,
		PrimaryKey: []*schema.Column{DocumentProcessingColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentprocessing_file_name",
				Unique:  false,
				Columns: []*schema.Column{DocumentProcessingColumns[1]},
			},
			{
				Name:    "documentprocessing_processing_status_document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentProcessingColumns[3], DocumentProcessingColumns[4]},
			},
			{
				Name:    "documentprocessing_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentProcessingColumns[11]},
			},
		},
	}
	// ExtractedEntitiesColumns holds the columns for the "extracted_entities" table.
	ExtractedEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_name", Type: field.TypeString},
		{Name: "entity_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "decimal(3,2)"}},
		{Name: "page_number", Type: field.TypeInt, Nullable: true},
		{Name: "bounding_box", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processing_id", Type: field.TypeInt},
	}
	// ExtractedEntitiesTable holds the schema information for the "extracted_entities" table.
	ExtractedEntitiesTable = &schema.Table{
		Name:       "extracted_entities",
		Columns:    ExtractedEntitiesColumns,
		PrimaryKey: []*schema.Column{ExtractedEntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_entities_document_processing_entities",
				Columns:    []*schema.Column{ExtractedEntitiesColumns[7]},
				RefColumns: []*schema.Column{DocumentProcessingColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedentity_processing_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedEntitiesColumns[7]},
			},
			{
				Name:    "extractedentity_entity_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractedEntitiesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentProcessingTable,
		ExtractedEntitiesTable,
	}
)

func init() {
	DocumentProcessingTable.Annotation = &entsql.Annotation{
		Table: "document_processing",
	}
	ExtractedEntitiesTable.ForeignKeys[0].RefTable = DocumentProcessingTable
	ExtractedEntitiesTable.Annotation = &entsql.Annotation{
		Table: "extracted_entities",
	}
}
