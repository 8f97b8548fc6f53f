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
)

type ExtractedEntity struct{ ent.Schema }

func (ExtractedEntity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_entities"},
	}
}

func (ExtractedEntity) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so batch inserts can set it directly
		field.Int("processing_id"),
		field.String("entity_name").NotEmpty(),
		field.String("entity_value").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence_score").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "decimal(3,2)"}),
		field.Int("page_number").Optional().Nillable(),
		field.JSON("bounding_box", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractedEntity) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entities -> ONE processing run
		edge.From("processing", DocumentProcessing.Type).
			Ref("entities").
			Field("processing_id").
			Required().
			Unique(),
	}
}

func (ExtractedEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processing_id"),
		index.Fields("entity_name"),
	}
}
