package auth

import (
	"errors"
	"net/http"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.Conflict(c, "Email already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, registerResponse{ID: u.ID.Hex(), Email: u.Email}, "User created")
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Status:  false,
				Message: "Invalid email or password",
			})
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{ID: u.ID.Hex(), Email: u.Email, Token: token}, "Login successful")
}
