// Code generated by ent, DO NOT EDIT.

package generationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the generationjob type in the database.
	Label = "generation_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldUnitsTotal holds the string denoting the units_total field in the database.
	FieldUnitsTotal = "units_total"
	// FieldUnitsDone holds the string denoting the units_done field in the database.
	FieldUnitsDone = "units_done"
	// FieldCurrentUnit holds the string denoting the current_unit field in the database.
	FieldCurrentUnit = "current_unit"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the generationjob in the database.
	Table = "generation_jobs"
)

// Columns holds all SQL columns for generationjob fields.
var Columns = []string{
	FieldID,
	FieldJobType,
	FieldStatus,
	FieldParameters,
	FieldUnitsTotal,
	FieldUnitsDone,
	FieldCurrentUnit,
	FieldResultSummary,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultUnitsTotal holds the default value on creation for the "units_total" field.
	DefaultUnitsTotal int
	// DefaultUnitsDone holds the default value on creation for the "units_done" field.
	DefaultUnitsDone int
	// DefaultCurrentUnit holds the default value on creation for the "current_unit" field.
	DefaultCurrentUnit string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GenerationJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUnitsTotal orders the results by the units_total field.
func ByUnitsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsTotal, opts...).ToFunc()
}

// ByUnitsDone orders the results by the units_done field.
func ByUnitsDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsDone, opts...).ToFunc()
}

// ByCurrentUnit orders the results by the current_unit field.
func ByCurrentUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentUnit, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
