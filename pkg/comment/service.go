package comment

import (
	"context"
	"strings"
	"time"
)

type CreateOptions struct {
	PostId   int64
	Author   string
	Content  string
	Approved bool
}

type Service interface {
	// CountApprovedByPostIds returns a count for every requested post, 0 included.
	CountApprovedByPostIds(ctx context.Context, postIds []int64) (map[int64]int, error)
	CreateComment(ctx context.Context, options *CreateOptions) (*Comment, error)
}

type service struct {
	commentRepository Repository
}

func NewService(commentRepository Repository) Service {
	return &service{
		commentRepository: commentRepository,
	}
}

func (s *service) CountApprovedByPostIds(ctx context.Context, postIds []int64) (map[int64]int, error) {
	counts, err := s.commentRepository.CountApprovedByPostIds(ctx, postIds)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]int, len(postIds))
	for _, postId := range postIds {
		result[postId] = counts[postId]
	}
	return result, nil
}

func (s *service) CreateComment(ctx context.Context, options *CreateOptions) (*Comment, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if options.PostId <= 0 {
		return nil, ErrPostIdInvalid
	}
	content := strings.TrimSpace(options.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	return s.commentRepository.Create(ctx, &Comment{
		PostId:    options.PostId,
		Author:    strings.TrimSpace(options.Author),
		Content:   content,
		Approved:  options.Approved,
		CreatedAt: time.Now(),
	})
}
