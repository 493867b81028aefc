package post

import (
	"errors"
)

var (
	ErrPostNotFound          = errors.New("post not found")
	ErrTitleRequired         = errors.New("title is required")
	ErrAuthorRequired        = errors.New("author is required")
	ErrStatusInvalid         = errors.New("status is invalid")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
