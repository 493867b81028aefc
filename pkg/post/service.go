package post

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Service interface {
	FindPosts(ctx context.Context, options *FindOptions) ([]*Post, error)
	CreatePost(ctx context.Context, options *CreateOptions) (*Post, error)
}

type service struct {
	postRepository Repository
}

func NewService(postRepository Repository) Service {
	return &service{
		postRepository: postRepository,
	}
}

func (s *service) FindPosts(ctx context.Context, options *FindOptions) ([]*Post, error) {
	if options == nil {
		options = &FindOptions{}
	}
	return s.postRepository.FindAll(ctx, options)
}

func (s *service) CreatePost(ctx context.Context, options *CreateOptions) (*Post, error) {
	p, err := processCreatePost(options)
	if err != nil {
		return nil, err
	}

	createdPost, err := s.postRepository.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	logrus.
		WithField("postId", createdPost.Id).
		WithField("authorId", createdPost.AuthorId).
		Debug("post created")

	return createdPost, nil
}

func processCreatePost(options *CreateOptions) (*Post, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if options.AuthorId <= 0 {
		return nil, ErrAuthorRequired
	}
	title := strings.TrimSpace(options.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	status := options.Status
	if status == "" {
		status = StatusDraft
	}
	if !status.Valid() {
		return nil, ErrStatusInvalid
	}

	now := time.Now()
	return &Post{
		AuthorId:  options.AuthorId,
		Title:     title,
		Content:   options.Content,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
