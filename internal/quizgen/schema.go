package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// poolSchemaDef is the structural schema a model response must satisfy
// before the pool is decoded. Word counts and the single-correct-option
// rule are enforced separately by ValidatePool.
var poolSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quiz_pool": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "integer"},
					"question":    map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"key":        map[string]any{"type": "string"},
								"text":       map[string]any{"type": "string"},
								"is_correct": map[string]any{"type": "boolean"},
								"rationale":  map[string]any{"type": "string"},
							},
							"required": []any{"key", "text", "is_correct", "rationale"},
						},
					},
				},
				"required": []any{"id", "question", "options"},
			},
		},
	},
	"required": []any{"quiz_pool"},
}

var (
	poolSchemaOnce sync.Once
	poolSchema     *jsonschema.Schema
	poolSchemaErr  error
)

func compiledPoolSchema() (*jsonschema.Schema, error) {
	poolSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(poolSchemaDef)
		if err != nil {
			poolSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			poolSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-pool.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			poolSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		poolSchema, poolSchemaErr = c.Compile(schemaURL)
	})
	return poolSchema, poolSchemaErr
}

// ValidateShape checks raw JSON against the pool schema. It catches
// structural defects (missing fields, wrong types) before decoding.
func ValidateShape(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledPoolSchema()
	if err != nil {
		return fmt.Errorf("compile pool schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("pool shape validation failed: %w", err)
	}
	return nil
}
