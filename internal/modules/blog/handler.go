package blog

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := r.Group("/blog")
	{
		g.POST("", authMW, h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", authMW, h.Update)
		g.DELETE("/:id", authMW, h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	in := CreateInput{
		Title:     c.PostForm("title"),
		Content:   c.PostForm("content"),
		Excerpt:   c.PostForm("excerpt"),
		Published: parseBool(c.PostForm("published")),
		Author:    c.PostForm("author"),
		Tags:      splitTags(c.PostForm("tags")),
	}
	if in.Title == "" || in.Content == "" {
		response.BadRequest(c, "title and content are required")
		return
	}

	f, ok := openFormFile(c, "featuredImage")
	if !ok {
		response.BadRequest(c, "Image required")
		return
	}
	defer f.Close()
	in.Image = f

	post, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, post, "Blog created successfully")
}

func (h *Handler) List(c *gin.Context) {
	posts, meta, err := h.svc.List(c.Request.Context(), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, posts, meta, "Blogs fetched")
}

func (h *Handler) Get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog not found")
		return
	}
	response.OK(c, post, "Blog fetched")
}

func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("content"); ok {
		in.Content = &v
	}
	if v, ok := c.GetPostForm("excerpt"); ok {
		in.Excerpt = &v
	}
	if v, ok := c.GetPostForm("published"); ok {
		b := parseBool(v)
		in.Published = &b
	}
	if v, ok := c.GetPostForm("author"); ok {
		in.Author = &v
	}
	if v, ok := c.GetPostForm("tags"); ok {
		tags := splitTags(v)
		in.Tags = &tags
	}

	if f, ok := openFormFile(c, "featuredImage"); ok {
		defer f.Close()
		in.Image = f
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, errBlogNotFound) {
			response.NotFound(c, "Blog not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, post, "Blog updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	if _, err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errBlogNotFound) {
			response.NotFound(c, "Blog not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil, "Blog deleted successfully")
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func splitTags(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
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
