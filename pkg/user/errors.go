package user

import (
	"errors"
)

var (
	ErrLoginRequired         = errors.New("login is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrEmailInvalid          = errors.New("email is invalid")
	ErrOneOptionRequired     = errors.New("one option is required")
	ErrUserNotFound          = errors.New("user not found")
	ErrLoginAlreadyExists    = errors.New("user login already exists")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
