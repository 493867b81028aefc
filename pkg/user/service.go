package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/sirupsen/logrus"
)

type Service interface {
	FindUser(ctx context.Context, options *FindOneOptions) (*User, error)
	FindUsers(ctx context.Context, options *FindOptions) ([]*User, error)
	CreateUser(ctx context.Context, options *CreateOptions) (*User, error)
}

type service struct {
	userRepository Repository
}

func NewService(userRepository Repository) Service {
	return &service{
		userRepository: userRepository,
	}
}

func (s *service) FindUser(ctx context.Context, options *FindOneOptions) (*User, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.userRepository.FindOne(ctx, options)
}

func (s *service) FindUsers(ctx context.Context, options *FindOptions) ([]*User, error) {
	if options == nil {
		options = &FindOptions{}
	}
	return s.userRepository.FindAll(ctx, options)
}

func (s *service) CreateUser(ctx context.Context, options *CreateOptions) (*User, error) {
	user, err := processCreateUser(options)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.
		WithField("userId", createdUser.Id).
		WithField("login", createdUser.Login).
		Debug("user created")

	return createdUser, nil
}

func processCreateUser(options *CreateOptions) (*User, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if len(options.Login) == 0 {
		return nil, ErrLoginRequired
	}
	if len(options.Email) == 0 {
		return nil, ErrEmailRequired
	}
	if !govalidator.IsEmail(options.Email) {
		return nil, ErrEmailInvalid
	}

	password, err := generatePassword([]byte(options.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := options.DisplayName
	if displayName == "" {
		displayName = options.Login
	}

	now := time.Now()

	return &User{
		Login:       strings.ToLower(options.Login),
		Email:       strings.ToLower(options.Email),
		DisplayName: displayName,
		Password:    string(password),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
