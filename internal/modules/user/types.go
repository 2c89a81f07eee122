package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ProfileUpdateDTO is the canonical, normalized form of a partial
// profile update. Pointer fields distinguish "absent" (leave stored
// value untouched) from "present".
type ProfileUpdateDTO struct {
	Name           *string                   `json:"name"`
	Email          *string                   `json:"email" validate:"omitempty,email"`
	Bio            *string                   `json:"bio"`
	About          *string                   `json:"about"`
	SocialLinks    *[]models.SocialLink      `json:"socialLinks"    validate:"omitempty,dive"`
	WorkExperience *[]models.WorkExperience  `json:"workExperience"`
	Education      *[]models.Education       `json:"education"`
	Skills         *[]models.SkillGroup      `json:"skills" validate:"omitempty,dive"`
}

// updateSet builds the partial $set document. Absent fields are simply
// not in the map, so the stored values survive the update untouched.
func (dto *ProfileUpdateDTO) updateSet() bson.M {
	set := bson.M{}
	if dto.Name != nil {
		set["name"] = *dto.Name
	}
	if dto.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*dto.Email))
	}
	if dto.Bio != nil {
		set["bio"] = *dto.Bio
	}
	if dto.About != nil {
		set["about"] = *dto.About
	}
	if dto.SocialLinks != nil {
		set["socialLinks"] = *dto.SocialLinks
	}
	if dto.WorkExperience != nil {
		set["workExperience"] = *dto.WorkExperience
	}
	if dto.Education != nil {
		set["education"] = *dto.Education
	}
	if dto.Skills != nil {
		set["skills"] = *dto.Skills
	}
	return set
}

// FieldError reports the first violated field of a profile update.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

var errUserNotFound = errors.New("user not found")
