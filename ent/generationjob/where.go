// Code generated by ent, DO NOT EDIT.

package generationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fwr/quizgen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldID, id))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldJobType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStatus, v))
}

// UnitsTotal applies equality check predicate on the "units_total" field. It's identical to UnitsTotalEQ.
func UnitsTotal(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldUnitsTotal, v))
}

// UnitsDone applies equality check predicate on the "units_done" field. It's identical to UnitsDoneEQ.
func UnitsDone(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldUnitsDone, v))
}

// CurrentUnit applies equality check predicate on the "current_unit" field. It's identical to CurrentUnitEQ.
func CurrentUnit(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCurrentUnit, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldJobType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldStatus, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldParameters))
}

// UnitsTotalEQ applies the EQ predicate on the "units_total" field.
func UnitsTotalEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldUnitsTotal, v))
}

// UnitsTotalNEQ applies the NEQ predicate on the "units_total" field.
func UnitsTotalNEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldUnitsTotal, v))
}

// UnitsTotalIn applies the In predicate on the "units_total" field.
func UnitsTotalIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldUnitsTotal, vs...))
}

// UnitsTotalNotIn applies the NotIn predicate on the "units_total" field.
func UnitsTotalNotIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldUnitsTotal, vs...))
}

// UnitsTotalGT applies the GT predicate on the "units_total" field.
func UnitsTotalGT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldUnitsTotal, v))
}

// UnitsTotalGTE applies the GTE predicate on the "units_total" field.
func UnitsTotalGTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldUnitsTotal, v))
}

// UnitsTotalLT applies the LT predicate on the "units_total" field.
func UnitsTotalLT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldUnitsTotal, v))
}

// UnitsTotalLTE applies the LTE predicate on the "units_total" field.
func UnitsTotalLTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldUnitsTotal, v))
}

// UnitsDoneEQ applies the EQ predicate on the "units_done" field.
func UnitsDoneEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldUnitsDone, v))
}

// UnitsDoneNEQ applies the NEQ predicate on the "units_done" field.
func UnitsDoneNEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldUnitsDone, v))
}

// UnitsDoneIn applies the In predicate on the "units_done" field.
func UnitsDoneIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldUnitsDone, vs...))
}

// UnitsDoneNotIn applies the NotIn predicate on the "units_done" field.
func UnitsDoneNotIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldUnitsDone, vs...))
}

// UnitsDoneGT applies the GT predicate on the "units_done" field.
func UnitsDoneGT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldUnitsDone, v))
}

// UnitsDoneGTE applies the GTE predicate on the "units_done" field.
func UnitsDoneGTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldUnitsDone, v))
}

// UnitsDoneLT applies the LT predicate on the "units_done" field.
func UnitsDoneLT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldUnitsDone, v))
}

// UnitsDoneLTE applies the LTE predicate on the "units_done" field.
func UnitsDoneLTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldUnitsDone, v))
}

// CurrentUnitEQ applies the EQ predicate on the "current_unit" field.
func CurrentUnitEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCurrentUnit, v))
}

// CurrentUnitNEQ applies the NEQ predicate on the "current_unit" field.
func CurrentUnitNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCurrentUnit, v))
}

// CurrentUnitIn applies the In predicate on the "current_unit" field.
func CurrentUnitIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCurrentUnit, vs...))
}

// CurrentUnitNotIn applies the NotIn predicate on the "current_unit" field.
func CurrentUnitNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCurrentUnit, vs...))
}

// CurrentUnitGT applies the GT predicate on the "current_unit" field.
func CurrentUnitGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCurrentUnit, v))
}

// CurrentUnitGTE applies the GTE predicate on the "current_unit" field.
func CurrentUnitGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCurrentUnit, v))
}

// CurrentUnitLT applies the LT predicate on the "current_unit" field.
func CurrentUnitLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCurrentUnit, v))
}

// CurrentUnitLTE applies the LTE predicate on the "current_unit" field.
func CurrentUnitLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCurrentUnit, v))
}

// CurrentUnitContains applies the Contains predicate on the "current_unit" field.
func CurrentUnitContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldCurrentUnit, v))
}

// CurrentUnitHasPrefix applies the HasPrefix predicate on the "current_unit" field.
func CurrentUnitHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldCurrentUnit, v))
}

// CurrentUnitHasSuffix applies the HasSuffix predicate on the "current_unit" field.
func CurrentUnitHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldCurrentUnit, v))
}

// CurrentUnitEqualFold applies the EqualFold predicate on the "current_unit" field.
func CurrentUnitEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldCurrentUnit, v))
}

// CurrentUnitContainsFold applies the ContainsFold predicate on the "current_unit" field.
func CurrentUnitContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldCurrentUnit, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldResultSummary))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.NotPredicates(p))
}
