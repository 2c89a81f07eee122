package project

import (
	"context"
	"io"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/media"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/repository"
	"github.com/folio-space/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const assetFolder = "projects"

type Service struct {
	projects *repository.Repository[models.ProjectModel]
	media    media.Store
	log      *zap.Logger
}

func NewService(db *mongo.Database, store media.Store, log *zap.Logger) *Service {
	return &Service{
		projects: repository.New[models.ProjectModel](db.Collection(models.CollectionProjects)),
		media:    store,
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.ProjectModel, error) {
	if in.Timeline == nil && len(in.Others) == 0 {
		return nil, errPhotoRequired
	}
	if len(in.Others) > maxOtherPhotos {
		return nil, errTooManyPhotos
	}

	timeline, others, err := s.uploadBatch(ctx, in.Timeline, in.Others)
	if err != nil {
		return nil, err
	}

	proj := &models.ProjectModel{
		Name:          in.Name,
		Description:   in.Description,
		LiveLink:      in.LiveLink,
		FrontendCode:  in.FrontendCode,
		BackendCode:   in.BackendCode,
		VideoLink:     in.VideoLink,
		Technologies:  in.Technologies,
		TimelinePhoto: timeline,
		OtherPhotos:   others,
	}

	if err := s.projects.Create(ctx, proj); err != nil {
		s.deleteAssets(ctx, proj.AssetIDs())
		return nil, err
	}
	return proj, nil
}

func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.ProjectModel, response.Pagination, error) {
	return pagination.Paginate[models.ProjectModel](ctx, s.projects.Collection(), bson.M{}, q)
}

func (s *Service) Get(ctx context.Context, id string) (*models.ProjectModel, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.ProjectModel, error) {
	if len(in.Others) > maxOtherPhotos {
		return nil, errTooManyPhotos
	}

	current, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errProjectNotFound
	}

	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.LiveLink != nil {
		set["liveLink"] = *in.LiveLink
	}
	if in.FrontendCode != nil {
		set["frontendCode"] = *in.FrontendCode
	}
	if in.BackendCode != nil {
		set["backendCode"] = *in.BackendCode
	}
	if in.VideoLink != nil {
		set["videoLink"] = *in.VideoLink
	}
	if in.Technologies != nil {
		set["technologies"] = *in.Technologies
	}

	// new photos go up first, the superseded assets come down only
	// after the record points at the replacements
	timeline, others, err := s.uploadBatch(ctx, in.Timeline, in.Others)
	if err != nil {
		return nil, err
	}

	var superseded []string
	if timeline != nil {
		set["timelinePhoto"] = timeline
		if current.TimelinePhoto != nil && current.TimelinePhoto.AssetID != "" {
			superseded = append(superseded, current.TimelinePhoto.AssetID)
		}
	}
	if in.Others != nil {
		set["otherPhotos"] = others
		for _, p := range current.OtherPhotos {
			if p.AssetID != "" {
				superseded = append(superseded, p.AssetID)
			}
		}
	}

	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.projects.SetByID(ctx, id, set)
	if err != nil {
		var fresh []string
		if timeline != nil {
			fresh = append(fresh, timeline.AssetID)
		}
		for _, p := range others {
			fresh = append(fresh, p.AssetID)
		}
		s.deleteAssets(ctx, fresh)
		return nil, err
	}
	if updated == nil {
		return nil, errProjectNotFound
	}

	s.deleteAssets(ctx, superseded)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*models.ProjectModel, error) {
	removed, err := s.projects.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, errProjectNotFound
	}
	s.deleteAssets(ctx, removed.AssetIDs())
	return removed, nil
}

// uploadBatch pushes the timeline photo and the gallery photos to the
// media store concurrently. On any failure the uploads that did land
// are reclaimed and the first error is returned.
func (s *Service) uploadBatch(ctx context.Context, timeline io.Reader, others []io.Reader) (*models.Photo, []models.Photo, error) {
	var timelinePhoto *models.Photo
	otherPhotos := make([]models.Photo, len(others))

	g, gctx := errgroup.WithContext(ctx)
	if timeline != nil {
		g.Go(func() error {
			asset, err := s.media.Upload(gctx, timeline, assetFolder)
			if err != nil {
				return err
			}
			timelinePhoto = &models.Photo{URL: asset.URL, AssetID: asset.AssetID}
			return nil
		})
	}
	for i, r := range others {
		g.Go(func() error {
			asset, err := s.media.Upload(gctx, r, assetFolder)
			if err != nil {
				return err
			}
			otherPhotos[i] = models.Photo{URL: asset.URL, AssetID: asset.AssetID}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var landed []string
		if timelinePhoto != nil {
			landed = append(landed, timelinePhoto.AssetID)
		}
		for _, p := range otherPhotos {
			if p.AssetID != "" {
				landed = append(landed, p.AssetID)
			}
		}
		s.deleteAssets(ctx, landed)
		return nil, nil, err
	}

	if len(others) == 0 {
		otherPhotos = nil
	}
	return timelinePhoto, otherPhotos, nil
}

// deleteAssets destroys remote assets in parallel, logging failures
// instead of surfacing them.
func (s *Service) deleteAssets(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if err := s.media.Delete(ctx, id); err != nil {
				s.log.Warn("asset delete failed", zap.String("assetId", id), zap.Error(err))
			}
			return nil
		})
	}
	g.Wait()
}
