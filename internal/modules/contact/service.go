package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	errContactNotFound = errors.New("contact not found")
	errMailDisabled    = errors.New("mail sender is not configured")
)

type Service struct {
	contacts *repository.Repository[models.ContactModel]
	mail     *mail.Sender
}

func NewService(db *mongo.Database, sender *mail.Sender) *Service {
	return &Service{
		contacts: repository.New[models.ContactModel](db.Collection(models.CollectionContacts)),
		mail:     sender,
	}
}

func (s *Service) Submit(ctx context.Context, dto SubmitDTO) (*models.ContactModel, error) {
	inquiry := &models.ContactModel{
		Name:    strings.TrimSpace(dto.Name),
		Email:   strings.ToLower(strings.TrimSpace(dto.Email)),
		Subject: strings.TrimSpace(dto.Subject),
		Message: dto.Message,
	}
	if err := s.contacts.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *Service) List(ctx context.Context) ([]models.ContactModel, error) {
	return s.contacts.List(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: -1}}, 0, 0)
}

func (s *Service) Get(ctx context.Context, id string) (*models.ContactModel, error) {
	return s.contacts.FindByID(ctx, id)
}

// Reply emails the stored inquiry's sender and returns the inquiry so
// the caller can attribute the action.
func (s *Service) Reply(ctx context.Context, id, message string) (*models.ContactModel, error) {
	inquiry, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, errContactNotFound
	}
	if !s.mail.Enabled() {
		return nil, errMailDisabled
	}

	err = s.mail.SendContactReply(inquiry.Email, mail.ContactReplyData{
		Name:    inquiry.Name,
		Subject: inquiry.Subject,
		Reply:   message,
	})
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}
