package pagination

import (
	"context"
	"strconv"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and validates ?page and ?limit from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "5"), DefaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Meta computes pagination metadata from a total count and a query.
func Meta(total int64, q Query) response.Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       q.Limit,
		HasNextPage: q.Page < totalPages,
		HasPrevPage: q.Page > 1,
	}
}

// Paginate counts matching documents and fetches one newest-first page.
func Paginate[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, q Query) ([]T, response.Pagination, error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	skip := int64((q.Page - 1) * q.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(q.Limit))

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	defer cur.Close(ctx)

	items := make([]T, 0, q.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, response.Pagination{}, err
	}

	return items, Meta(total, q), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
