// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
)

// ExtractedEntityCreate is the builder for creating a ExtractedEntity entity.
type ExtractedEntityCreate struct {
	config
	mutation *ExtractedEntityMutation
	hooks    []Hook
}

// SetProcessingID sets the "processing_id" field.
func (_c *ExtractedEntityCreate) SetProcessingID(v int) *ExtractedEntityCreate {
	_c.mutation.SetProcessingID(v)
	return _c
}

// SetEntityName sets the "entity_name" field.
func (_c *ExtractedEntityCreate) SetEntityName(v string) *ExtractedEntityCreate {
	_c.mutation.SetEntityName(v)
	return _c
}

// SetEntityValue sets the "entity_value" field.
func (_c *ExtractedEntityCreate) SetEntityValue(v string) *ExtractedEntityCreate {
	_c.mutation.SetEntityValue(v)
	return _c
}

// SetNillableEntityValue sets the "entity_value" field if the given value is not nil.
func (_c *ExtractedEntityCreate) SetNillableEntityValue(v *string) *ExtractedEntityCreate {
	if v != nil {
		_c.SetEntityValue(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ExtractedEntityCreate) SetConfidenceScore(v float64) *ExtractedEntityCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ExtractedEntityCreate) SetNillableConfidenceScore(v *float64) *ExtractedEntityCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *ExtractedEntityCreate) SetPageNumber(v int) *ExtractedEntityCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_c *ExtractedEntityCreate) SetNillablePageNumber(v *int) *ExtractedEntityCreate {
	if v != nil {
		_c.SetPageNumber(*v)
	}
	return _c
}

// SetBoundingBox sets the "bounding_box" field.
func (_c *ExtractedEntityCreate) SetBoundingBox(v json.RawMessage) *ExtractedEntityCreate {
	_c.mutation.SetBoundingBox(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedEntityCreate) SetCreatedAt(v time.Time) *ExtractedEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedEntityCreate) SetNillableCreatedAt(v *time.Time) *ExtractedEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessing sets the "processing" edge to the DocumentProcessing entity.
func (_c *ExtractedEntityCreate) SetProcessing(v *DocumentProcessing) *ExtractedEntityCreate {
	return _c.SetProcessingID(v.ID)
}

// Mutation returns the ExtractedEntityMutation object of the builder.
func (_c *ExtractedEntityCreate) Mutation() *ExtractedEntityMutation {
	return _c.mutation
}

// Save creates the ExtractedEntity in the database.
func (_c *ExtractedEntityCreate) Save(ctx context.Context) (*ExtractedEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedEntityCreate) SaveX(ctx context.Context) *ExtractedEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedEntityCreate) check() error {
	if _, ok := _c.mutation.ProcessingID(); !ok {
		return &ValidationError{Name: "processing_id", err: errors.New(`ent: missing required field "ExtractedEntity.processing_id"`)}
	}
	if _, ok := _c.mutation.EntityName(); !ok {
		return &ValidationError{Name: "entity_name", err: errors.New(`ent: missing required field "ExtractedEntity.entity_name"`)}
	}
	if v, ok := _c.mutation.EntityName(); ok {
		if err := extractedentity.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedEntity.entity_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedEntity.created_at"`)}
	}
	if len(_c.mutation.ProcessingIDs()) == 0 {
		return &ValidationError{Name: "processing", err: errors.New(`ent: missing required edge "ExtractedEntity.processing"`)}
	}
	return nil
}

func (_c *ExtractedEntityCreate) sqlSave(ctx context.Context) (*ExtractedEntity, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedEntityCreate) createSpec() (*ExtractedEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedentity.Table, sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntityName(); ok {
		_spec.SetField(extractedentity.FieldEntityName, field.TypeString, value)
		_node.EntityName = value
	}
	if value, ok := _c.mutation.EntityValue(); ok {
		_spec.SetField(extractedentity.FieldEntityValue, field.TypeString, value)
		_node.EntityValue = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedentity.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(extractedentity.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = &value
	}
	if value, ok := _c.mutation.BoundingBox(); ok {
		_spec.SetField(extractedentity.FieldBoundingBox, field.TypeJSON, value)
		_node.BoundingBox = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProcessingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedentity.ProcessingTable,
			Columns: []string{extractedentity.ProcessingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProcessingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedEntityCreateBulk is the builder for creating many ExtractedEntity entities in bulk.
type ExtractedEntityCreateBulk struct {
	config
	err      error
	builders []*ExtractedEntityCreate
}

// Save creates the ExtractedEntity entities in the database.
func (_c *ExtractedEntityCreateBulk) Save(ctx context.Context) ([]*ExtractedEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedEntityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractedEntityCreateBulk) SaveX(ctx context.Context) []*ExtractedEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
