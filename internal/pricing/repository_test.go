package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func ruleColumns() []string {
	return []string{"id", "name", "description", "rule_type", "multiplier", "surcharge_cents",
		"start_hour", "end_hour", "applies_to_days", "is_active", "created_at"}
}

func TestListRules(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM pricing_rules\s+ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(ruleColumns()).
			AddRow(uuid.New(), "Evening peak", nil, RuleTypePeakHour, 1.5, int64(200), 18, 21, "{}", true, time.Now()).
			AddRow(uuid.New(), "Weekend", nil, RuleTypeWeekend, 1.0, int64(500), nil, nil, "{saturday,sunday}", true, time.Now()))

	rules, err := repo.ListRules(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rules, 2)
	assert.Equal(t, RuleTypePeakHour, rules[0].RuleType)
	assert.Equal(t, 18, *rules[0].StartHour)
	assert.Nil(t, rules[1].StartHour)
	assert.Equal(t, pq.StringArray{"saturday", "sunday"}, rules[1].AppliesToDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRule(t *testing.T) {
	repo, mock := newMockRepo(t)

	start, end := 18, 21
	mock.ExpectQuery(`INSERT INTO pricing_rules`).
		WithArgs("Evening peak", nil, RuleTypePeakHour, 1.5, int64(200), start, end, nil).
		WillReturnRows(sqlmock.NewRows(ruleColumns()).
			AddRow(uuid.New(), "Evening peak", nil, RuleTypePeakHour, 1.5, int64(200), start, end, "{}", true, time.Now()))

	rule, err := repo.CreateRule(context.Background(), CreateRuleRequest{
		Name:           "Evening peak",
		RuleType:       RuleTypePeakHour,
		Multiplier:     1.5,
		SurchargeCents: 200,
		StartHour:      &start,
		EndHour:        &end,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Evening peak", rule.Name)
	assert.True(t, rule.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
