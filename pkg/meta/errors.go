package meta

import (
	"errors"
)

var (
	ErrKindInvalid     = errors.New("meta kind is invalid")
	ErrObjectIdInvalid = errors.New("meta object id is invalid")
	ErrKeyRequired     = errors.New("meta key is required")
)
