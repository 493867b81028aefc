package term

import (
	"errors"
)

var (
	ErrNameRequired          = errors.New("name is required")
	ErrSlugInvalid           = errors.New("slug is invalid")
	ErrTaxonomyRequired      = errors.New("taxonomy is required")
	ErrPostIdInvalid         = errors.New("post id is invalid")
	ErrTermNotFound          = errors.New("term not found")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
