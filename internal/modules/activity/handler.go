package activity

import (
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/activity")

	g.GET("", authMW, h.recent)
}

// GET /activity — 5 most recent entries, actor names populated
func (h *Handler) recent(c *gin.Context) {
	items, err := h.svc.Recent(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items, "Activity fetched successfully")
}
