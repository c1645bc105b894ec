// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fwr/quizgen/ent/generationjob"
	"github.com/fwr/quizgen/ent/predicate"
)

// GenerationJobUpdate is the builder for updating GenerationJob entities.
type GenerationJobUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationJobMutation
}

// Where appends a list predicates to the GenerationJobUpdate builder.
func (_u *GenerationJobUpdate) Where(ps ...predicate.GenerationJob) *GenerationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *GenerationJobUpdate) SetJobType(v string) *GenerationJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableJobType(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationJobUpdate) SetStatus(v string) *GenerationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableStatus(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GenerationJobUpdate) SetParameters(v map[string]interface{}) *GenerationJobUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GenerationJobUpdate) ClearParameters() *GenerationJobUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetUnitsTotal sets the "units_total" field.
func (_u *GenerationJobUpdate) SetUnitsTotal(v int) *GenerationJobUpdate {
	_u.mutation.ResetUnitsTotal()
	_u.mutation.SetUnitsTotal(v)
	return _u
}

// SetNillableUnitsTotal sets the "units_total" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableUnitsTotal(v *int) *GenerationJobUpdate {
	if v != nil {
		_u.SetUnitsTotal(*v)
	}
	return _u
}

// AddUnitsTotal adds value to the "units_total" field.
func (_u *GenerationJobUpdate) AddUnitsTotal(v int) *GenerationJobUpdate {
	_u.mutation.AddUnitsTotal(v)
	return _u
}

// SetUnitsDone sets the "units_done" field.
func (_u *GenerationJobUpdate) SetUnitsDone(v int) *GenerationJobUpdate {
	_u.mutation.ResetUnitsDone()
	_u.mutation.SetUnitsDone(v)
	return _u
}

// SetNillableUnitsDone sets the "units_done" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableUnitsDone(v *int) *GenerationJobUpdate {
	if v != nil {
		_u.SetUnitsDone(*v)
	}
	return _u
}

// AddUnitsDone adds value to the "units_done" field.
func (_u *GenerationJobUpdate) AddUnitsDone(v int) *GenerationJobUpdate {
	_u.mutation.AddUnitsDone(v)
	return _u
}

// SetCurrentUnit sets the "current_unit" field.
func (_u *GenerationJobUpdate) SetCurrentUnit(v string) *GenerationJobUpdate {
	_u.mutation.SetCurrentUnit(v)
	return _u
}

// SetNillableCurrentUnit sets the "current_unit" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableCurrentUnit(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetCurrentUnit(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *GenerationJobUpdate) SetResultSummary(v map[string]interface{}) *GenerationJobUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *GenerationJobUpdate) ClearResultSummary() *GenerationJobUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationJobUpdate) SetStartedAt(v time.Time) *GenerationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableStartedAt(v *time.Time) *GenerationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationJobUpdate) ClearStartedAt() *GenerationJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GenerationJobUpdate) SetCompletedAt(v time.Time) *GenerationJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableCompletedAt(v *time.Time) *GenerationJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GenerationJobUpdate) ClearCompletedAt() *GenerationJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_u *GenerationJobUpdate) Mutation() *GenerationJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationjob.Table, generationjob.Columns, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(generationjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(generationjob.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(generationjob.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnitsTotal(); ok {
		_spec.SetField(generationjob.FieldUnitsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsTotal(); ok {
		_spec.AddField(generationjob.FieldUnitsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsDone(); ok {
		_spec.SetField(generationjob.FieldUnitsDone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsDone(); ok {
		_spec.AddField(generationjob.FieldUnitsDone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentUnit(); ok {
		_spec.SetField(generationjob.FieldCurrentUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(generationjob.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(generationjob.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generationjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationJobUpdateOne is the builder for updating a single GenerationJob entity.
type GenerationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationJobMutation
}

// SetJobType sets the "job_type" field.
func (_u *GenerationJobUpdateOne) SetJobType(v string) *GenerationJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableJobType(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationJobUpdateOne) SetStatus(v string) *GenerationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableStatus(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GenerationJobUpdateOne) SetParameters(v map[string]interface{}) *GenerationJobUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GenerationJobUpdateOne) ClearParameters() *GenerationJobUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetUnitsTotal sets the "units_total" field.
func (_u *GenerationJobUpdateOne) SetUnitsTotal(v int) *GenerationJobUpdateOne {
	_u.mutation.ResetUnitsTotal()
	_u.mutation.SetUnitsTotal(v)
	return _u
}

// SetNillableUnitsTotal sets the "units_total" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableUnitsTotal(v *int) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetUnitsTotal(*v)
	}
	return _u
}

// AddUnitsTotal adds value to the "units_total" field.
func (_u *GenerationJobUpdateOne) AddUnitsTotal(v int) *GenerationJobUpdateOne {
	_u.mutation.AddUnitsTotal(v)
	return _u
}

// SetUnitsDone sets the "units_done" field.
func (_u *GenerationJobUpdateOne) SetUnitsDone(v int) *GenerationJobUpdateOne {
	_u.mutation.ResetUnitsDone()
	_u.mutation.SetUnitsDone(v)
	return _u
}

// SetNillableUnitsDone sets the "units_done" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableUnitsDone(v *int) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetUnitsDone(*v)
	}
	return _u
}

// AddUnitsDone adds value to the "units_done" field.
func (_u *GenerationJobUpdateOne) AddUnitsDone(v int) *GenerationJobUpdateOne {
	_u.mutation.AddUnitsDone(v)
	return _u
}

// SetCurrentUnit sets the "current_unit" field.
func (_u *GenerationJobUpdateOne) SetCurrentUnit(v string) *GenerationJobUpdateOne {
	_u.mutation.SetCurrentUnit(v)
	return _u
}

// SetNillableCurrentUnit sets the "current_unit" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableCurrentUnit(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetCurrentUnit(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *GenerationJobUpdateOne) SetResultSummary(v map[string]interface{}) *GenerationJobUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *GenerationJobUpdateOne) ClearResultSummary() *GenerationJobUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationJobUpdateOne) SetStartedAt(v time.Time) *GenerationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableStartedAt(v *time.Time) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationJobUpdateOne) ClearStartedAt() *GenerationJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GenerationJobUpdateOne) SetCompletedAt(v time.Time) *GenerationJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableCompletedAt(v *time.Time) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GenerationJobUpdateOne) ClearCompletedAt() *GenerationJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_u *GenerationJobUpdateOne) Mutation() *GenerationJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationJobUpdate builder.
func (_u *GenerationJobUpdateOne) Where(ps ...predicate.GenerationJob) *GenerationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationJobUpdateOne) Select(field string, fields ...string) *GenerationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationJob entity.
func (_u *GenerationJobUpdateOne) Save(ctx context.Context) (*GenerationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationJobUpdateOne) SaveX(ctx context.Context) *GenerationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationJobUpdateOne) sqlSave(ctx context.Context) (_node *GenerationJob, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationjob.Table, generationjob.Columns, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationjob.FieldID)
		for _, f := range fields {
			if !generationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(generationjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(generationjob.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(generationjob.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnitsTotal(); ok {
		_spec.SetField(generationjob.FieldUnitsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsTotal(); ok {
		_spec.AddField(generationjob.FieldUnitsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsDone(); ok {
		_spec.SetField(generationjob.FieldUnitsDone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsDone(); ok {
		_spec.AddField(generationjob.FieldUnitsDone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentUnit(); ok {
		_spec.SetField(generationjob.FieldCurrentUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(generationjob.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(generationjob.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generationjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &GenerationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
