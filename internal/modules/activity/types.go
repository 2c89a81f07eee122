package activity

import (
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/gin-gonic/gin"
)

type activityResponse struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actorId,omitempty"`
	ActorName string    `json:"actorName,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(a *models.ActivityModel) activityResponse {
	return activityResponse{
		ID:        a.ID.Hex(),
		ActorID:   a.ActorID,
		Action:    a.Action,
		Details:   a.Details,
		IPAddress: a.IPAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
	}
}

// FromRequest builds an Entry with the requester's network metadata.
func FromRequest(c *gin.Context, actorID, action, details string) Entry {
	return Entry{
		ActorID:   actorID,
		Action:    action,
		Details:   details,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
