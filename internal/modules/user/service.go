package user

import (
	"context"
	"io"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/media"
	"github.com/folio-space/core/internal/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	profileFolder = "profiles"
	logoFolder    = "logos"
)

type Service struct {
	users *repository.Repository[models.UserModel]
	media media.Store
	log   *zap.Logger
}

func NewService(db *mongo.Database, store media.Store, log *zap.Logger) *Service {
	return &Service{
		users: repository.New[models.UserModel](db.Collection(models.CollectionUsers)),
		media: store,
		log:   log,
	}
}

// FindByID returns a user or nil when the id is unknown.
func (s *Service) FindByID(ctx context.Context, id string) (*models.UserModel, error) {
	return s.users.FindByID(ctx, id)
}

// FindByEmail returns a user or nil when no account has that email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	return s.users.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// Attachments are the optional uploaded binaries of a profile update.
// A nil reader means that slot was not part of the request.
type Attachments struct {
	Profile io.Reader
	Logo    io.Reader
}

// UpdateProfile merges a validated partial update into the stored user
// and swaps up to two remote media assets. The two attachments are
// reconciled independently; each swap uploads the replacement first and
// deletes the superseded asset only after the upload succeeded, so a
// failed upload leaves the stored identifiers intact.
func (s *Service) UpdateProfile(ctx context.Context, userID string, dto *ProfileUpdateDTO, files Attachments) (*models.UserModel, error) {
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errUserNotFound
	}

	set := dto.updateSet()

	if files.Profile != nil {
		if err := s.swapAsset(ctx, set, current.ProfileAssetID, profileFolder, files.Profile,
			"profilePicture", "profileAssetId"); err != nil {
			return nil, err
		}
	}
	if files.Logo != nil {
		if err := s.swapAsset(ctx, set, current.LogoAssetID, logoFolder, files.Logo,
			"logo", "logoAssetId"); err != nil {
			return nil, err
		}
	}

	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.users.SetByID(ctx, userID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errUserNotFound
	}
	return updated, nil
}

// swapAsset records the replacement's URL and asset id in the update
// set. The old asset's delete failure is logged, not propagated: the
// new asset is already live and the record must point at it.
func (s *Service) swapAsset(ctx context.Context, set bson.M, oldAssetID, folder string, r io.Reader, urlField, idField string) error {
	asset, upErr, delErr := media.Replace(ctx, s.media, oldAssetID, folder, r)
	if upErr != nil {
		return upErr
	}
	if delErr != nil {
		s.log.Warn("superseded asset delete failed",
			zap.String("assetId", oldAssetID),
			zap.Error(delErr),
		)
	}
	set[urlField] = asset.URL
	set[idField] = asset.AssetID
	return nil
}
