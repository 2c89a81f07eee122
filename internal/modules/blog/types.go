package blog

import (
	"errors"
	"io"
)

// CreateInput carries the fields of a new post. Image is required: a
// post is never published without a featured image.
type CreateInput struct {
	Title     string
	Content   string
	Excerpt   string
	Published bool
	Author    string
	Tags      []string
	Image     io.Reader
}

// UpdateInput carries a partial edit. Nil pointers mean the field was
// absent from the request; a nil Image keeps the current featured
// image.
type UpdateInput struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Published *bool
	Author    *string
	Tags      *[]string
	Image     io.Reader
}

var (
	errBlogNotFound  = errors.New("blog not found")
	errImageRequired = errors.New("featuredImage is required")
)
