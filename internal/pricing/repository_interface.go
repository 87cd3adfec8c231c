package pricing

import "context"

type Repository interface {
	ListRules(ctx context.Context) ([]Rule, error)
	CreateRule(ctx context.Context, req CreateRuleRequest) (*Rule, error)
}
