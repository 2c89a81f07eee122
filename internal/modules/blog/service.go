package blog

import (
	"context"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/media"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/repository"
	"github.com/folio-space/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const assetFolder = "blogs"

type Service struct {
	blogs *repository.Repository[models.BlogModel]
	media media.Store
	log   *zap.Logger
}

func NewService(db *mongo.Database, store media.Store, log *zap.Logger) *Service {
	return &Service{
		blogs: repository.New[models.BlogModel](db.Collection(models.CollectionBlogs)),
		media: store,
		log:   log,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.BlogModel, error) {
	if in.Image == nil {
		return nil, errImageRequired
	}

	now := time.Now()
	post := &models.BlogModel{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Slug:      Slugify(in.Title, now),
		Published: in.Published,
		Author:    in.Author,
		Tags:      in.Tags,
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	asset, err := s.media.Upload(ctx, in.Image, assetFolder)
	if err != nil {
		return nil, err
	}
	post.FeaturedImage = asset.URL
	post.ImageAssetID = asset.AssetID

	if err := s.blogs.Create(ctx, post); err != nil {
		// the post never made it to the store, so the fresh upload is
		// orphaned; reclaim it
		if delErr := s.media.Delete(ctx, asset.AssetID); delErr != nil {
			s.log.Warn("orphaned asset cleanup failed",
				zap.String("assetId", asset.AssetID), zap.Error(delErr))
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	return pagination.Paginate[models.BlogModel](ctx, s.blogs.Collection(), bson.M{}, q)
}

// Get returns a post and counts the read in the same round trip.
func (s *Service) Get(ctx context.Context, id string) (*models.BlogModel, error) {
	return s.blogs.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"readCount": 1}})
}

// GetBySlug resolves a post by its slug without touching the counter.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BlogModel, error) {
	return s.blogs.FindOne(ctx, bson.M{"slug": slug})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.BlogModel, error) {
	current, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errBlogNotFound
	}

	set := bson.M{}
	if in.Title != nil && *in.Title != current.Title {
		set["title"] = *in.Title
		set["slug"] = Slugify(*in.Title, current.CreatedAt)
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Excerpt != nil {
		set["excerpt"] = *in.Excerpt
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}
	if in.Author != nil {
		set["author"] = *in.Author
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}

	if in.Image != nil {
		asset, upErr, delErr := media.Replace(ctx, s.media, current.ImageAssetID, assetFolder, in.Image)
		if upErr != nil {
			return nil, upErr
		}
		if delErr != nil {
			s.log.Warn("superseded asset delete failed",
				zap.String("assetId", current.ImageAssetID), zap.Error(delErr))
		}
		set["featuredImage"] = asset.URL
		set["imageAssetId"] = asset.AssetID
	}

	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.blogs.SetByID(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errBlogNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*models.BlogModel, error) {
	removed, err := s.blogs.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, errBlogNotFound
	}
	if removed.ImageAssetID != "" {
		if err := s.media.Delete(ctx, removed.ImageAssetID); err != nil {
			s.log.Warn("asset delete failed",
				zap.String("assetId", removed.ImageAssetID), zap.Error(err))
		}
	}
	return removed, nil
}
