// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fwr/quizgen/ent/generationjob"
	"github.com/google/uuid"
)

// GenerationJobCreate is the builder for creating a GenerationJob entity.
type GenerationJobCreate struct {
	config
	mutation *GenerationJobMutation
	hooks    []Hook
}

// SetJobType sets the "job_type" field.
func (_c *GenerationJobCreate) SetJobType(v string) *GenerationJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationJobCreate) SetStatus(v string) *GenerationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableStatus(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *GenerationJobCreate) SetParameters(v map[string]interface{}) *GenerationJobCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetUnitsTotal sets the "units_total" field.
func (_c *GenerationJobCreate) SetUnitsTotal(v int) *GenerationJobCreate {
	_c.mutation.SetUnitsTotal(v)
	return _c
}

// SetNillableUnitsTotal sets the "units_total" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableUnitsTotal(v *int) *GenerationJobCreate {
	if v != nil {
		_c.SetUnitsTotal(*v)
	}
	return _c
}

// SetUnitsDone sets the "units_done" field.
func (_c *GenerationJobCreate) SetUnitsDone(v int) *GenerationJobCreate {
	_c.mutation.SetUnitsDone(v)
	return _c
}

// SetNillableUnitsDone sets the "units_done" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableUnitsDone(v *int) *GenerationJobCreate {
	if v != nil {
		_c.SetUnitsDone(*v)
	}
	return _c
}

// SetCurrentUnit sets the "current_unit" field.
func (_c *GenerationJobCreate) SetCurrentUnit(v string) *GenerationJobCreate {
	_c.mutation.SetCurrentUnit(v)
	return _c
}

// SetNillableCurrentUnit sets the "current_unit" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableCurrentUnit(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetCurrentUnit(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *GenerationJobCreate) SetResultSummary(v map[string]interface{}) *GenerationJobCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationJobCreate) SetCreatedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableCreatedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GenerationJobCreate) SetStartedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableStartedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GenerationJobCreate) SetCompletedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableCompletedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GenerationJobCreate) SetID(v uuid.UUID) *GenerationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableID(v *uuid.UUID) *GenerationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_c *GenerationJobCreate) Mutation() *GenerationJobMutation {
	return _c.mutation
}

// Save creates the GenerationJob in the database.
func (_c *GenerationJobCreate) Save(ctx context.Context) (*GenerationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationJobCreate) SaveX(ctx context.Context) *GenerationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := generationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UnitsTotal(); !ok {
		v := generationjob.DefaultUnitsTotal
		_c.mutation.SetUnitsTotal(v)
	}
	if _, ok := _c.mutation.UnitsDone(); !ok {
		v := generationjob.DefaultUnitsDone
		_c.mutation.SetUnitsDone(v)
	}
	if _, ok := _c.mutation.CurrentUnit(); !ok {
		v := generationjob.DefaultCurrentUnit
		_c.mutation.SetCurrentUnit(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationJobCreate) check() error {
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "GenerationJob.job_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationJob.status"`)}
	}
	if _, ok := _c.mutation.UnitsTotal(); !ok {
		return &ValidationError{Name: "units_total", err: errors.New(`ent: missing required field "GenerationJob.units_total"`)}
	}
	if _, ok := _c.mutation.UnitsDone(); !ok {
		return &ValidationError{Name: "units_done", err: errors.New(`ent: missing required field "GenerationJob.units_done"`)}
	}
	if _, ok := _c.mutation.CurrentUnit(); !ok {
		return &ValidationError{Name: "current_unit", err: errors.New(`ent: missing required field "GenerationJob.current_unit"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationJob.created_at"`)}
	}
	return nil
}

func (_c *GenerationJobCreate) sqlSave(ctx context.Context) (*GenerationJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationJobCreate) createSpec() (*GenerationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationjob.Table, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(generationjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(generationjob.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.UnitsTotal(); ok {
		_spec.SetField(generationjob.FieldUnitsTotal, field.TypeInt, value)
		_node.UnitsTotal = value
	}
	if value, ok := _c.mutation.UnitsDone(); ok {
		_spec.SetField(generationjob.FieldUnitsDone, field.TypeInt, value)
		_node.UnitsDone = value
	}
	if value, ok := _c.mutation.CurrentUnit(); ok {
		_spec.SetField(generationjob.FieldCurrentUnit, field.TypeString, value)
		_node.CurrentUnit = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(generationjob.FieldResultSummary, field.TypeJSON, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// GenerationJobCreateBulk is the builder for creating many GenerationJob entities in bulk.
type GenerationJobCreateBulk struct {
	config
	err      error
	builders []*GenerationJobCreate
}

// Save creates the GenerationJob entities in the database.
func (_c *GenerationJobCreateBulk) Save(ctx context.Context) ([]*GenerationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationJobMutation)
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
func (_c *GenerationJobCreateBulk) SaveX(ctx context.Context) []*GenerationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
