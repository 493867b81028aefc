package comment

import (
	"errors"
)

var (
	ErrPostIdInvalid         = errors.New("post id is invalid")
	ErrContentRequired       = errors.New("content is required")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
