package court

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/cache"
)

const cacheKey = "refdata:courts"

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

// ListCourts godoc
// @Summary      List courts
// @Description  Returns active courts ordered by name.
// @Tags         courts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Court
// @Failure      500  {object}  gin.H
// @Router       /courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	var courts []Court
	err := h.cache.Fetch(c.Request.Context(), cacheKey, &courts, func(ctx context.Context) (interface{}, error) {
		return h.repo.ListActive(ctx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}

// CreateCourt godoc
// @Summary      Create court
// @Description  Creates a court. Admin only.
// @Tags         courts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateCourtRequest  true  "Court data"
// @Success      201      {object}  Court
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/courts [post]
func (h *Handler) CreateCourt(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create court"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKey)

	c.JSON(http.StatusCreated, created)
}
