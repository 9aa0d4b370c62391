package workflow

import (
	"context"

	"github.com/copydesk/copydesk/pkg/models"
)

// ConditionEvaluator is the extension point for the opaque conditions a
// role-permission binding may carry. The engine does not interpret condition
// payloads itself.
type ConditionEvaluator interface {
	Evaluate(ctx context.Context, conditions map[string]any, content *models.ContentState) (bool, error)
}

// passEvaluator is the shipped default: conditions always pass.
type passEvaluator struct{}

func (passEvaluator) Evaluate(_ context.Context, _ map[string]any, _ *models.ContentState) (bool, error) {
	return true, nil
}

// PassEvaluator returns the default condition evaluator, which accepts every
// condition payload unconditionally.
func PassEvaluator() ConditionEvaluator {
	return passEvaluator{}
}
