package pricing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courtbook/internal/cache"
	"courtbook/internal/logger"
)

func setupPricingRouter(t *testing.T) (*gin.Engine, *MockRuleRepo, *MockCourtRepo, *MockCoachRepo, *MockEquipmentRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	ruleRepo := new(MockRuleRepo)
	courtRepo := new(MockCourtRepo)
	coachRepo := new(MockCoachRepo)
	equipmentRepo := new(MockEquipmentRepo)

	client, _ := redismock.NewClientMock()
	c := cache.NewWithClient(client, 30*time.Second)
	t.Cleanup(func() { c.Close() })

	h := &Handler{
		service: NewService(ruleRepo, courtRepo, coachRepo, equipmentRepo),
		repo:    ruleRepo,
		cache:   c,
	}

	router := gin.New()
	router.GET("/pricing/rules", h.ListRules)
	router.POST("/pricing/quote", h.Quote)
	router.POST("/admin/pricing/rules", h.CreateRule)
	return router, ruleRepo, courtRepo, coachRepo, equipmentRepo
}

func postRuleJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListRulesHandler(t *testing.T) {
	router, ruleRepo, _, _, _ := setupPricingRouter(t)

	ruleRepo.On("ListRules", mock.Anything).Return(testRules(), nil)

	req := httptest.NewRequest("GET", "/pricing/rules", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rules []Rule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rules))
	assert.Len(t, rules, 3)
}

func TestQuoteHandler_Success(t *testing.T) {
	router, ruleRepo, courtRepo, _, _ := setupPricingRouter(t)

	crt := indoorCourt()
	courtRepo.On("GetByID", mock.Anything, crt.ID).Return(crt, nil)
	ruleRepo.On("ListRules", mock.Anything).Return(testRules(), nil)

	w := postRuleJSON(t, router, "/pricing/quote", QuoteRequest{
		CourtID: crt.ID, Date: "2026-01-03", Hour: 19,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var b Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, int64(4000), b.TotalCents)
}

func TestQuoteHandler_CourtNotFound(t *testing.T) {
	router, _, courtRepo, _, _ := setupPricingRouter(t)

	courtID := uuid.New()
	courtRepo.On("GetByID", mock.Anything, courtID).Return(nil, assert.AnError)

	w := postRuleJSON(t, router, "/pricing/quote", QuoteRequest{
		CourtID: courtID, Date: "2026-01-03", Hour: 10,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteHandler_InvalidHour(t *testing.T) {
	router, _, _, _, _ := setupPricingRouter(t)

	w := postRuleJSON(t, router, "/pricing/quote", QuoteRequest{
		CourtID: uuid.New(), Date: "2026-01-03", Hour: 24,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRuleHandler_Success(t *testing.T) {
	router, ruleRepo, _, _, _ := setupPricingRouter(t)

	start, end := 18, 21
	created := &Rule{
		ID: uuid.New(), Name: "Evening peak", RuleType: RuleTypePeakHour,
		Multiplier: 1.5, SurchargeCents: 200, StartHour: &start, EndHour: &end, IsActive: true,
	}
	ruleRepo.On("CreateRule", mock.Anything, mock.AnythingOfType("pricing.CreateRuleRequest")).Return(created, nil)

	w := postRuleJSON(t, router, "/admin/pricing/rules", CreateRuleRequest{
		Name: "Evening peak", RuleType: RuleTypePeakHour,
		Multiplier: 1.5, SurchargeCents: 200, StartHour: &start, EndHour: &end,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	ruleRepo.AssertExpectations(t)
}

func TestCreateRuleHandler_EndBeforeStart(t *testing.T) {
	router, ruleRepo, _, _, _ := setupPricingRouter(t)

	start, end := 21, 18
	w := postRuleJSON(t, router, "/admin/pricing/rules", CreateRuleRequest{
		Name: "Backwards window", RuleType: RuleTypePeakHour,
		Multiplier: 1.5, StartHour: &start, EndHour: &end,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ruleRepo.AssertNotCalled(t, "CreateRule", mock.Anything, mock.Anything)
}

func TestCreateRuleHandler_HalfOpenWindow(t *testing.T) {
	router, ruleRepo, _, _, _ := setupPricingRouter(t)

	start := 18
	w := postRuleJSON(t, router, "/admin/pricing/rules", CreateRuleRequest{
		Name: "Missing end", RuleType: RuleTypePeakHour,
		Multiplier: 1.5, StartHour: &start,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ruleRepo.AssertNotCalled(t, "CreateRule", mock.Anything, mock.Anything)
}

func TestCreateRuleHandler_MissingName(t *testing.T) {
	router, _, _, _, _ := setupPricingRouter(t)

	w := postRuleJSON(t, router, "/admin/pricing/rules", CreateRuleRequest{
		RuleType: RuleTypeWeekend,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRuleHandler_InvalidDay(t *testing.T) {
	router, _, _, _, _ := setupPricingRouter(t)

	w := postRuleJSON(t, router, "/admin/pricing/rules", CreateRuleRequest{
		Name: "Weekend", RuleType: RuleTypeWeekend, AppliesToDays: []string{"funday"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
