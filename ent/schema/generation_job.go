package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GenerationJob tracks one asynchronous generation run: its scope,
// lifecycle state, progress, and final summary.
type GenerationJob struct {
	ent.Schema
}

func (GenerationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("job_type").
			Comment("Scope of the run: full, sector, career_level, soft_skills"),
		field.String("status").
			Default("pending").
			Comment("Lifecycle state: pending, running, completed, failed, cancelled"),
		field.JSON("parameters", map[string]any{}).
			Optional().
			Comment("Scope parameters: sector, career, level"),
		field.Int("units_total").
			Default(0),
		field.Int("units_done").
			Default(0),
		field.String("current_unit").
			Default("").
			Comment("Unit key currently being generated"),
		field.JSON("result_summary", map[string]any{}).
			Optional().
			Comment("Final counts: succeeded, skipped, failed, questions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (GenerationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
