package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/activity"
	"github.com/folio-space/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	activity *activity.Service
}

func NewHandler(svc *Service, act *activity.Service) *Handler {
	return &Handler{svc: svc, activity: act}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := r.Group("/contact")
	{
		g.POST("", h.Submit)
		g.GET("", authMW, h.List)
		g.GET("/:id", authMW, h.Get)
		g.POST("/reply/:id", authMW, h.Reply)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := h.svc.Submit(c.Request.Context(), dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	h.activity.Record(activity.FromRequest(c, "",
		"New Contact Message", fmt.Sprintf("Message from %s <%s>", saved.Name, saved.Email)))
	response.Created(c, saved, "Contact message submitted")
}

func (h *Handler) List(c *gin.Context) {
	contacts, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, contacts, "Contacts fetched")
}

func (h *Handler) Get(c *gin.Context) {
	inquiry, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if inquiry == nil {
		response.NotFound(c, "Contact not found")
		return
	}
	response.OK(c, inquiry, "Contact fetched")
}

func (h *Handler) Reply(c *gin.Context) {
	var dto ReplyDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.ReplyMessage) == "" {
		response.BadRequest(c, "Reply message is required")
		return
	}

	inquiry, err := h.svc.Reply(c.Request.Context(), c.Param("id"), dto.ReplyMessage)
	if err != nil {
		if errors.Is(err, errContactNotFound) {
			response.NotFound(c, "Contact not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.activity.Record(activity.FromRequest(c, middleware.CurrentUserID(c),
		"Replied to Contact", fmt.Sprintf("Replied to %s <%s>", inquiry.Name, inquiry.Email)))
	response.OK(c, nil, "Reply sent successfully")
}
