package models

// ActivityModel is one append-only audit trail entry.
type ActivityModel struct {
	Base      `bson:",inline"`
	ActorID   string `json:"actorId,omitempty"   bson:"actorId,omitempty"`
	Action    string `json:"action"              bson:"action"`
	Details   string `json:"details,omitempty"   bson:"details,omitempty"`
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// CollectionActivities is the MongoDB collection name for ActivityModel.
const CollectionActivities = "activities"
