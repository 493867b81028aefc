package batchloader

import (
	"errors"
)

var (
	ErrLoaderNotFound = errors.New("loader not registered")
	ErrTypeMismatch   = errors.New("loaded value type mismatch")
	ErrNoLoader       = errors.New("batch loader not found in context")
)
