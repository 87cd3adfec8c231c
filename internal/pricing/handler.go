package pricing

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/api"
	"courtbook/internal/cache"
	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
)

const rulesCacheKey = "refdata:pricing_rules"

type Handler struct {
	service Service
	repo    Repository
	cache   *cache.Cache
}

func NewHandler(db *sqlx.DB, c *cache.Cache) *Handler {
	repo := NewRepository(db)
	return &Handler{
		service: NewService(repo, court.NewRepository(db), coach.NewRepository(db), equipment.NewRepository(db)),
		repo:    repo,
		cache:   c,
	}
}

// ListRules godoc
// @Summary      List pricing rules
// @Description  Returns all pricing rules in creation order.
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Rule
// @Failure      500  {object}  gin.H
// @Router       /pricing/rules [get]
func (h *Handler) ListRules(c *gin.Context) {
	var rules []Rule
	err := h.cache.Fetch(c.Request.Context(), rulesCacheKey, &rules, func(ctx context.Context) (interface{}, error) {
		return h.repo.ListRules(ctx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pricing rules"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// Quote godoc
// @Summary      Price quote
// @Description  Computes the fee breakdown for a court/time/coach/equipment selection.
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      QuoteRequest  true  "Selection"
// @Success      200      {object}  Breakdown
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /pricing/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidHour), errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCourtNotFound), errors.Is(err, ErrCoachNotFound), errors.Is(err, ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quote"})
		}
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// CreateRule godoc
// @Summary      Create pricing rule
// @Description  Creates a pricing rule. Admin only.
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRuleRequest  true  "Rule data"
// @Success      201      {object}  Rule
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/pricing/rules [post]
func (h *Handler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	if req.StartHour != nil && req.EndHour != nil && *req.EndHour <= *req.StartHour {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_hour must be greater than start_hour"})
		return
	}

	if (req.StartHour == nil) != (req.EndHour == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_hour and end_hour must be set together"})
		return
	}

	rule, err := h.repo.CreateRule(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pricing rule"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), rulesCacheKey)

	c.JSON(http.StatusCreated, rule)
}
