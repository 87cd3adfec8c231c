package equipment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/cache"
)

const cacheKey = "refdata:equipment"

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

// ListEquipment godoc
// @Summary      List equipment
// @Description  Returns active equipment ordered by name.
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Equipment
// @Failure      500  {object}  gin.H
// @Router       /equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	var items []Equipment
	err := h.cache.Fetch(c.Request.Context(), cacheKey, &items, func(ctx context.Context) (interface{}, error) {
		return h.repo.ListActive(ctx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateEquipment godoc
// @Summary      Create equipment
// @Description  Creates an equipment item. Admin only.
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateEquipmentRequest  true  "Equipment data"
// @Success      201      {object}  Equipment
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/equipment [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKey)

	c.JSON(http.StatusCreated, created)
}
