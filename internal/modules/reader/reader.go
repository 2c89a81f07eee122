// Package reader exposes the aggregate readership counter summed over
// every blog post's read count.
package reader

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/repository"
	"github.com/folio-space/core/internal/pkg/response"
)

type Service struct {
	blogs *repository.Repository[models.BlogModel]
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		blogs: repository.New[models.BlogModel](db.Collection(models.CollectionBlogs)),
	}
}

func (s *Service) TotalReaders(ctx context.Context) (int64, error) {
	return s.blogs.SumField(ctx, "readCount")
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/readers", h.Total)
}

func (h *Handler) Total(c *gin.Context) {
	total, err := h.svc.TotalReaders(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"totalReaders": total}, "Blogs fetched successfully")
}
