package activity

import (
	"context"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// recentLimit caps the audit trail feed.
const recentLimit = 5

type Service struct {
	repo  *repository.Repository[models.ActivityModel]
	users *repository.Repository[models.UserModel]
	log   *zap.Logger
}

func NewService(db *mongo.Database, log *zap.Logger) *Service {
	return &Service{
		repo:  repository.New[models.ActivityModel](db.Collection(models.CollectionActivities)),
		users: repository.New[models.UserModel](db.Collection(models.CollectionUsers)),
		log:   log,
	}
}

// Entry is one audit record to persist.
type Entry struct {
	ActorID   string
	Action    string
	Details   string
	IPAddress string
	UserAgent string
}

// Record appends an audit entry without blocking the caller. A failed
// write is logged and never surfaces as the triggering operation's
// error.
func (s *Service) Record(e Entry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		doc := models.ActivityModel{
			ActorID:   e.ActorID,
			Action:    e.Action,
			Details:   e.Details,
			IPAddress: e.IPAddress,
			UserAgent: e.UserAgent,
		}
		if err := s.repo.Create(ctx, &doc); err != nil {
			s.log.Warn("activity write failed",
				zap.String("action", e.Action),
				zap.Error(err),
			)
		}
	}()
}

// Recent returns the newest audit entries, newest first, with each
// actor's display name resolved from the users collection.
func (s *Service) Recent(ctx context.Context) ([]activityResponse, error) {
	items, err := s.repo.List(ctx, nil, bson.D{{Key: "createdAt", Value: -1}}, 0, recentLimit)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	out := make([]activityResponse, len(items))
	for i, a := range items {
		resp := toResponse(&a)
		if a.ActorID != "" {
			name, ok := names[a.ActorID]
			if !ok {
				if u, err := s.users.FindByID(ctx, a.ActorID); err == nil && u != nil {
					name = u.Name
				}
				names[a.ActorID] = name
			}
			resp.ActorName = name
		}
		out[i] = resp
	}
	return out, nil
}
