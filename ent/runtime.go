// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fwr/quizgen/ent/generationjob"
	"github.com/fwr/quizgen/ent/llmrequestevent"
	"github.com/fwr/quizgen/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationjobFields := schema.GenerationJob{}.Fields()
	_ = generationjobFields
	// generationjobDescStatus is the schema descriptor for status field.
	generationjobDescStatus := generationjobFields[2].Descriptor()
	// generationjob.DefaultStatus holds the default value on creation for the status field.
	generationjob.DefaultStatus = generationjobDescStatus.Default.(string)
	// generationjobDescUnitsTotal is the schema descriptor for units_total field.
	generationjobDescUnitsTotal := generationjobFields[4].Descriptor()
	// generationjob.DefaultUnitsTotal holds the default value on creation for the units_total field.
	generationjob.DefaultUnitsTotal = generationjobDescUnitsTotal.Default.(int)
	// generationjobDescUnitsDone is the schema descriptor for units_done field.
	generationjobDescUnitsDone := generationjobFields[5].Descriptor()
	// generationjob.DefaultUnitsDone holds the default value on creation for the units_done field.
	generationjob.DefaultUnitsDone = generationjobDescUnitsDone.Default.(int)
	// generationjobDescCurrentUnit is the schema descriptor for current_unit field.
	generationjobDescCurrentUnit := generationjobFields[6].Descriptor()
	// generationjob.DefaultCurrentUnit holds the default value on creation for the current_unit field.
	generationjob.DefaultCurrentUnit = generationjobDescCurrentUnit.Default.(string)
	// generationjobDescCreatedAt is the schema descriptor for created_at field.
	generationjobDescCreatedAt := generationjobFields[8].Descriptor()
	// generationjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationjob.DefaultCreatedAt = generationjobDescCreatedAt.Default.(func() time.Time)
	// generationjobDescID is the schema descriptor for id field.
	generationjobDescID := generationjobFields[0].Descriptor()
	// generationjob.DefaultID holds the default value on creation for the id field.
	generationjob.DefaultID = generationjobDescID.Default.(func() uuid.UUID)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
}
