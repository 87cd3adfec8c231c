package pricing

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ListRules returns all rules in creation order. The evaluator filters for
// active rules itself; creation order makes first-match deterministic when
// duplicate active rules of one type exist.
func (r *repository) ListRules(ctx context.Context) ([]Rule, error) {
	query := `
		SELECT id, name, description, rule_type, multiplier, surcharge_cents,
		       start_hour, end_hour, applies_to_days, is_active, created_at
		FROM pricing_rules
		ORDER BY created_at ASC, name ASC
	`

	var rules []Rule
	err := r.db.SelectContext(ctx, &rules, query)
	if err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *repository) CreateRule(ctx context.Context, req CreateRuleRequest) (*Rule, error) {
	query := `
		INSERT INTO pricing_rules (name, description, rule_type, multiplier, surcharge_cents, start_hour, end_hour, applies_to_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, description, rule_type, multiplier, surcharge_cents,
		          start_hour, end_hour, applies_to_days, is_active, created_at
	`

	var rule Rule
	err := r.db.GetContext(ctx, &rule, query,
		req.Name, req.Description, req.RuleType, req.Multiplier, req.SurchargeCents,
		req.StartHour, req.EndHour, pq.StringArray(req.AppliesToDays),
	)
	if err != nil {
		return nil, err
	}

	return &rule, nil
}
