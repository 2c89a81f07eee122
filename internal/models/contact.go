package models

// ContactModel is a submitted contact inquiry. Immutable after creation.
type ContactModel struct {
	Base    `bson:",inline"`
	Name    string `json:"name"    bson:"name"`
	Email   string `json:"email"   bson:"email"`
	Subject string `json:"subject" bson:"subject"`
	Message string `json:"message" bson:"message"`
}

// CollectionContacts is the MongoDB collection name for ContactModel.
const CollectionContacts = "contacts"
