package llm

import "context"

type contextKey string

const labelKey contextKey = "llm_label"

// WithLabel attaches a call label to the context for event logging,
// e.g. "generator:finance_auditor_lvl3".
func WithLabel(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, labelKey, label)
}

// LabelFrom extracts the call label from the context.
func LabelFrom(ctx context.Context) string {
	if v, ok := ctx.Value(labelKey).(string); ok {
		return v
	}
	return "unknown"
}
