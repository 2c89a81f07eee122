package project

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/activity"
	"github.com/folio-space/core/internal/pkg/pagination"
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
	g := r.Group("/project")
	{
		g.POST("", authMW, h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", authMW, h.Update)
		g.DELETE("/:id", authMW, h.Delete)
	}
}

type createForm struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description"`
	LiveLink     string `form:"liveLink" binding:"required,url"`
	FrontendCode string `form:"frontendCode" binding:"required,url"`
	BackendCode  string `form:"backendCode" binding:"required,url"`
	VideoLink    string `form:"videoLink" binding:"omitempty,url"`
	Technologies string `form:"technologies"`
}

func (h *Handler) Create(c *gin.Context) {
	var form createForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	in := CreateInput{
		Name:         form.Name,
		Description:  form.Description,
		LiveLink:     form.LiveLink,
		FrontendCode: form.FrontendCode,
		BackendCode:  form.BackendCode,
		VideoLink:    form.VideoLink,
		Technologies: splitList(form.Technologies),
	}

	files, cleanup := openPhotoFiles(c)
	defer cleanup()
	in.Timeline = files.timeline
	in.Others = files.others

	proj, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errPhotoRequired):
			response.BadRequest(c, "Timeline photo is required")
		case errors.Is(err, errTooManyPhotos):
			response.BadRequest(c, "Too many photos")
		default:
			response.InternalError(c, err)
		}
		return
	}

	h.activity.Record(activity.FromRequest(c, middleware.CurrentUserID(c),
		"Created Project", fmt.Sprintf("Project named %q created", proj.Name)))
	response.Created(c, proj, "Project created successfully")
}

func (h *Handler) List(c *gin.Context) {
	projects, meta, err := h.svc.List(c.Request.Context(), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, projects, meta, "Projects fetched")
}

func (h *Handler) Get(c *gin.Context) {
	proj, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if proj == nil {
		response.NotFound(c, "Project not found")
		return
	}

	h.activity.Record(activity.FromRequest(c, middleware.CurrentUserID(c),
		"Viewed Project", fmt.Sprintf("Project named %q viewed", proj.Name)))
	response.OK(c, proj, "Project fetched")
}

func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("liveLink"); ok {
		in.LiveLink = &v
	}
	if v, ok := c.GetPostForm("frontendCode"); ok {
		in.FrontendCode = &v
	}
	if v, ok := c.GetPostForm("backendCode"); ok {
		in.BackendCode = &v
	}
	if v, ok := c.GetPostForm("videoLink"); ok {
		in.VideoLink = &v
	}
	if v, ok := c.GetPostForm("technologies"); ok {
		techs := splitList(v)
		in.Technologies = &techs
	}

	files, cleanup := openPhotoFiles(c)
	defer cleanup()
	in.Timeline = files.timeline
	in.Others = files.others

	proj, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, errProjectNotFound):
			response.NotFound(c, "Project not found")
		case errors.Is(err, errTooManyPhotos):
			response.BadRequest(c, "Too many photos")
		default:
			response.InternalError(c, err)
		}
		return
	}

	h.activity.Record(activity.FromRequest(c, middleware.CurrentUserID(c),
		"Updated Project", fmt.Sprintf("Project named %q updated", proj.Name)))
	response.OK(c, proj, "Project updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.activity.Record(activity.FromRequest(c, middleware.CurrentUserID(c),
		"Deleted Project", fmt.Sprintf("Project with id %q deleted", id)))
	response.OK(c, nil, "Project deleted successfully")
}

type photoFiles struct {
	timeline io.Reader
	others   []io.Reader
}

// openPhotoFiles opens the timelinePhoto and otherPhotos multipart
// parts; the returned cleanup closes whatever was opened.
func openPhotoFiles(c *gin.Context) (photoFiles, func()) {
	var files photoFiles
	var open []multipart.File
	cleanup := func() {
		for _, f := range open {
			f.Close()
		}
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return files, cleanup
	}

	if fhs := form.File["timelinePhoto"]; len(fhs) > 0 {
		if f, err := fhs[0].Open(); err == nil {
			open = append(open, f)
			files.timeline = f
		}
	}
	for _, fh := range form.File["otherPhotos"] {
		f, err := fh.Open()
		if err != nil {
			continue
		}
		open = append(open, f)
		files.others = append(files.others, f)
	}
	return files, cleanup
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
