// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// ExtractedEntityDelete is the builder for deleting a ExtractedEntity entity.
type ExtractedEntityDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedEntityMutation
}

// Where appends a list predicates to the ExtractedEntityDelete builder.
func (_d *ExtractedEntityDelete) Where(ps ...predicate.ExtractedEntity) *ExtractedEntityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedEntityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedEntityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedEntityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedentity.Table, sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractedEntityDeleteOne is the builder for deleting a single ExtractedEntity entity.
type ExtractedEntityDeleteOne struct {
	_d *ExtractedEntityDelete
}

// Where appends a list predicates to the ExtractedEntityDelete builder.
func (_d *ExtractedEntityDeleteOne) Where(ps ...predicate.ExtractedEntity) *ExtractedEntityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedEntityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedentity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedEntityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
