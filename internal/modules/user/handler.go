package user

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := r.Group("/user")
	{
		g.GET("/me", authMW, h.Me)
		g.PUT("/me", authMW, h.UpdateMe)
		g.GET("/:email", h.GetByEmail)
	}
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.svc.FindByID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, u, "User fetched successfully")
}

func (h *Handler) GetByEmail(c *gin.Context) {
	u, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, u, "User fetched successfully")
}

func (h *Handler) UpdateMe(c *gin.Context) {
	fields, err := parseUpdateRequest(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	NormalizeProfileFields(fields)
	dto, ferr := DecodeProfileUpdate(fields)
	if ferr != nil {
		response.BadRequest(c, ferr.Error())
		return
	}

	var attach Attachments
	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()
	if f, ok := openFormFile(c, "profile"); ok {
		closers = append(closers, f)
		attach.Profile = f
	}
	if f, ok := openFormFile(c, "logo"); ok {
		closers = append(closers, f)
		attach.Logo = f
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), dto, attach)
	if err != nil {
		switch {
		case errors.Is(err, errUserNotFound):
			response.NotFound(c, "User not found")
		case mongo.IsDuplicateKeyError(err):
			response.Conflict(c, "Email already in use")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, updated, "Profile updated successfully")
}

// parseUpdateRequest accepts either a multipart form or a JSON body and
// returns the scalar fields as a generic map for normalization.
func parseUpdateRequest(c *gin.Context) (map[string]interface{}, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errors.New("invalid multipart form")
		}
		return FieldsFromForm(form.Value), nil
	}

	fields := map[string]interface{}{}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errors.New("unable to read request body")
	}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, errors.New("invalid JSON body")
		}
	}
	return fields, nil
}

func openFormFile(c *gin.Context, name string) (multipart.File, bool) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		return nil, false
	}
	return f, true
}
