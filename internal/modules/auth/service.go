package auth

import (
	"context"
	"strings"
	"time"

	"github.com/folio-space/core/internal/models"
	jwtpkg "github.com/folio-space/core/internal/pkg/jwt"
	"github.com/folio-space/core/internal/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users    *repository.Repository[models.UserModel]
	tokenTTL time.Duration
}

func NewService(db *mongo.Database, tokenTTL time.Duration) *Service {
	if tokenTTL == 0 {
		tokenTTL = jwtpkg.DefaultTTL
	}
	return &Service{
		users:    repository.New[models.UserModel](db.Collection(models.CollectionUsers)),
		tokenTTL: tokenTTL,
	}
}

// Register creates a new owner account. The email is normalized to
// lower case and must be unique.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	existing, err := s.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{
		Name:     dto.Name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, &u); err != nil {
		// Unique index may still reject a concurrent duplicate.
		if mongo.IsDuplicateKeyError(err) {
			return nil, errEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// Login checks credentials and issues a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (*models.UserModel, string, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	u, err := s.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := jwtpkg.Sign(u.ID.Hex(), u.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
