package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/db/ent/schema/utils"
)

type DocumentProcessing struct{ ent.Schema }

func (DocumentProcessing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_processing"},
	}
}

func (DocumentProcessing) Fields() []ent.Field {
	return []ent.Field{
		field.String("file_name").NotEmpty(),
		field.String("gcs_path").NotEmpty(),
		field.String("processing_status").
			Default(string(constants.ProcessingStatusProcessing)).
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		field.String("document_status").
			Default(string(constants.DocumentStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Float("min_confidence").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "decimal(3,2)"}),
		field.String("exception_reason_code").Optional().Nillable(),
		field.String("exception_reason_description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("exception_entities", json.RawMessage{}).
			Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("raw_processor_output", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentProcessing) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE processing run -> MANY extracted entities
		edge.To("entities", ExtractedEntity.Type),
	}
}

func (DocumentProcessing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_name"),
		index.Fields("processing_status", "document_status"),
		index.Fields("created_at"),
	}
}
