// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fwr/quizgen/ent/generationjob"
	"github.com/google/uuid"
)

// GenerationJob is the model entity for the GenerationJob schema.
type GenerationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Scope of the run: full, sector, career_level, soft_skills
	JobType string `json:"job_type,omitempty"`
	// Lifecycle state: pending, running, completed, failed, cancelled
	Status string `json:"status,omitempty"`
	// Scope parameters: sector, career, level
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// UnitsTotal holds the value of the "units_total" field.
	UnitsTotal int `json:"units_total,omitempty"`
	// UnitsDone holds the value of the "units_done" field.
	UnitsDone int `json:"units_done,omitempty"`
	// Unit key currently being generated
	CurrentUnit string `json:"current_unit,omitempty"`
	// Final counts: succeeded, skipped, failed, questions
	ResultSummary map[string]interface{} `json:"result_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationjob.FieldParameters, generationjob.FieldResultSummary:
			values[i] = new([]byte)
		case generationjob.FieldUnitsTotal, generationjob.FieldUnitsDone:
			values[i] = new(sql.NullInt64)
		case generationjob.FieldJobType, generationjob.FieldStatus, generationjob.FieldCurrentUnit:
			values[i] = new(sql.NullString)
		case generationjob.FieldCreatedAt, generationjob.FieldStartedAt, generationjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case generationjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationJob fields.
func (_m *GenerationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generationjob.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case generationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case generationjob.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case generationjob.FieldUnitsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_total", values[i])
			} else if value.Valid {
				_m.UnitsTotal = int(value.Int64)
			}
		case generationjob.FieldUnitsDone:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_done", values[i])
			} else if value.Valid {
				_m.UnitsDone = int(value.Int64)
			}
		case generationjob.FieldCurrentUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_unit", values[i])
			} else if value.Valid {
				_m.CurrentUnit = value.String
			}
		case generationjob.FieldResultSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultSummary); err != nil {
					return fmt.Errorf("unmarshal field result_summary: %w", err)
				}
			}
		case generationjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case generationjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationJob.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationJob.
// Note that you need to call GenerationJob.Unwrap() before calling this method if this GenerationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationJob) Update() *GenerationJobUpdateOne {
	return NewGenerationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationJob) Unwrap() *GenerationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationJob) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("units_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsTotal))
	builder.WriteString(", ")
	builder.WriteString("units_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsDone))
	builder.WriteString(", ")
	builder.WriteString("current_unit=")
	builder.WriteString(_m.CurrentUnit)
	builder.WriteString(", ")
	builder.WriteString("result_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultSummary))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GenerationJobs is a parsable slice of GenerationJob.
type GenerationJobs []*GenerationJob
