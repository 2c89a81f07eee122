package project

import (
	"errors"
	"io"
)

const maxOtherPhotos = 10

// CreateInput carries a new project's fields plus its photo binaries.
// At least one photo (timeline or other) must be present.
type CreateInput struct {
	Name         string
	Description  string
	LiveLink     string
	FrontendCode string
	BackendCode  string
	VideoLink    string
	Technologies []string
	Timeline     io.Reader
	Others       []io.Reader
}

// UpdateInput carries a partial edit. Nil pointers mean the field was
// absent. A non-nil Timeline replaces the timeline photo; a non-nil
// Others slice replaces the whole "other photos" gallery.
type UpdateInput struct {
	Name         *string
	Description  *string
	LiveLink     *string
	FrontendCode *string
	BackendCode  *string
	VideoLink    *string
	Technologies *[]string
	Timeline     io.Reader
	Others       []io.Reader
}

var (
	errProjectNotFound = errors.New("project not found")
	errPhotoRequired   = errors.New("at least one photo is required")
	errTooManyPhotos   = errors.New("too many photos")
)
