// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GenerationJobsColumns holds the columns for the "generation_jobs" table.
	GenerationJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "units_total", Type: field.TypeInt, Default: 0},
		{Name: "units_done", Type: field.TypeInt, Default: 0},
		{Name: "current_unit", Type: field.TypeString, Default: ""},
		{Name: "result_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// GenerationJobsTable holds the schema information for the "generation_jobs" table.
	GenerationJobsTable = &schema.Table{
		Name:       "generation_jobs",
		Columns:    GenerationJobsColumns,
		PrimaryKey: []*schema.Column{GenerationJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationjob_status",
				Unique:  false,
				Columns: []*schema.Column{GenerationJobsColumns[2]},
			},
			{
				Name:    "generationjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationJobsColumns[8]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_label",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GenerationJobsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
