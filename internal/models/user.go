package models

// SocialLink is one entry of the profile's social link list.
type SocialLink struct {
	Platform string `json:"platform" bson:"platform" validate:"required"`
	URL      string `json:"url"      bson:"url"      validate:"required,url"`
	Icon     string `json:"icon,omitempty" bson:"icon,omitempty"`
}

// WorkExperience is one entry of the profile's work history.
type WorkExperience struct {
	Title       string `json:"title,omitempty"       bson:"title,omitempty"`
	Designation string `json:"designation,omitempty" bson:"designation,omitempty"`
	Location    string `json:"location,omitempty"    bson:"location,omitempty"`
	TimePeriod  string `json:"timePeriod,omitempty"  bson:"timePeriod,omitempty"`
	Details     string `json:"details,omitempty"     bson:"details,omitempty"`
}

// Education is one entry of the profile's education history.
type Education struct {
	Institution string `json:"institution,omitempty" bson:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"      bson:"degree,omitempty"`
	TimePeriod  string `json:"timePeriod,omitempty"  bson:"timePeriod,omitempty"`
}

// SkillGroup groups skill names under a category label.
type SkillGroup struct {
	Category string   `json:"category" bson:"category" validate:"required"`
	Names    []string `json:"names"    bson:"names"    validate:"min=1,dive,required"`
}

// UserModel is the portfolio owner. Password is write-only: it never
// appears in JSON output and is only loaded when explicitly projected.
type UserModel struct {
	Base           `bson:",inline"`
	Name           string           `json:"name"  bson:"name"`
	Email          string           `json:"email" bson:"email"`
	Password       string           `json:"-"     bson:"password"`
	Bio            string           `json:"bio,omitempty"   bson:"bio,omitempty"`
	About          string           `json:"about,omitempty" bson:"about,omitempty"`
	SocialLinks    []SocialLink     `json:"socialLinks"    bson:"socialLinks,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience" bson:"workExperience,omitempty"`
	Education      []Education      `json:"education"      bson:"education,omitempty"`
	Skills         []SkillGroup     `json:"skills"         bson:"skills,omitempty"`
	ProfilePicture string           `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	ProfileAssetID string           `json:"-" bson:"profileAssetId,omitempty"`
	Logo           string           `json:"logo,omitempty" bson:"logo,omitempty"`
	LogoAssetID    string           `json:"-" bson:"logoAssetId,omitempty"`
}

// CollectionUsers is the MongoDB collection name for UserModel.
const CollectionUsers = "users"
