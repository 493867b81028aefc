package user

import (
	"context"
	"errors"
	"testing"
)

func TestProcessCreateUserRejectsInvalidEmail(t *testing.T) {
	_, err := processCreateUser(&CreateOptions{
		Login: "alice",
		Email: "not-an-email",
	})
	if !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected %v, got %v", ErrEmailInvalid, err)
	}
}

func TestProcessCreateUserNormalizes(t *testing.T) {
	u, err := processCreateUser(&CreateOptions{
		Login:    "Alice",
		Email:    "Alice@Example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Login != "alice" || u.Email != "alice@example.com" {
		t.Fatalf("expected lower-cased login and email, got %q %q", u.Login, u.Email)
	}
	if u.DisplayName != "Alice" {
		t.Fatalf("expected display name to default to login, got %q", u.DisplayName)
	}
	if u.Password == "secret" {
		t.Fatalf("expected password to be hashed")
	}
}

func TestFindOneOptionsValidate(t *testing.T) {
	if err := (&FindOneOptions{}).Validate(); !errors.Is(err, ErrOneOptionRequired) {
		t.Fatalf("expected %v, got %v", ErrOneOptionRequired, err)
	}

	if err := (&FindOneOptions{LoginOption: &LoginOption{}}).Validate(); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected %v, got %v", ErrLoginRequired, err)
	}

	if err := (&FindOneOptions{LoginOption: &LoginOption{Login: "alice"}}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type recordingRepository struct {
	findAllOptions []*FindOptions
}

func (r *recordingRepository) FindOne(_ context.Context, _ *FindOneOptions) (*User, error) {
	return nil, nil
}

func (r *recordingRepository) FindAll(_ context.Context, options *FindOptions) ([]*User, error) {
	r.findAllOptions = append(r.findAllOptions, options)
	return nil, nil
}

func (r *recordingRepository) Create(_ context.Context, user *User) (*User, error) {
	return user, nil
}

func TestFindUsersDefaultsNilOptions(t *testing.T) {
	repository := &recordingRepository{}
	s := NewService(repository)

	if _, err := s.FindUsers(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repository.findAllOptions) != 1 || repository.findAllOptions[0] == nil {
		t.Fatalf("expected repository to receive non-nil options, got %v", repository.findAllOptions)
	}
}

func TestFindUserRejectsMissingOption(t *testing.T) {
	s := NewService(&recordingRepository{})

	if _, err := s.FindUser(context.Background(), &FindOneOptions{}); !errors.Is(err, ErrOneOptionRequired) {
		t.Fatalf("expected %v, got %v", ErrOneOptionRequired, err)
	}
}
