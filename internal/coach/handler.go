package coach

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/cache"
)

const cacheKey = "refdata:coaches"

type Handler struct {
	repo  Repository
	cache *cache.Cache
}

func NewHandler(db *sqlx.DB, c *cache.Cache) *Handler {
	return &Handler{
		repo:  NewRepository(db),
		cache: c,
	}
}

// ListCoaches godoc
// @Summary      List coaches
// @Description  Returns active coaches ordered by name.
// @Tags         coaches
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Coach
// @Failure      500  {object}  gin.H
// @Router       /coaches [get]
func (h *Handler) ListCoaches(c *gin.Context) {
	var coaches []Coach
	err := h.cache.Fetch(c.Request.Context(), cacheKey, &coaches, func(ctx context.Context) (interface{}, error) {
		return h.repo.ListActive(ctx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coaches"})
		return
	}

	c.JSON(http.StatusOK, coaches)
}

// CreateCoach godoc
// @Summary      Create coach
// @Description  Creates a coach. Admin only.
// @Tags         coaches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateCoachRequest  true  "Coach data"
// @Success      201      {object}  Coach
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/coaches [post]
func (h *Handler) CreateCoach(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coach"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKey)

	c.JSON(http.StatusCreated, created)
}
