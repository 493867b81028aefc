package term

import (
	"context"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gosimple/slug"

	"github.com/UnAfraid/pressload/pkg/dbx"
)

type Service interface {
	FindTerms(ctx context.Context, options *FindOptions) ([]*Term, error)
	// FindTermsByPostIds resolves the terms of many posts with one relationship read
	// and one term read. Posts without terms are omitted.
	FindTermsByPostIds(ctx context.Context, postIds []int64) (map[int64][]*Term, error)
	CreateTerm(ctx context.Context, options *CreateOptions) (*Term, error)
	SetPostTerms(ctx context.Context, postId int64, termIds []int64) error
}

type service struct {
	termRepository    Repository
	transactionScoper dbx.TransactionScoper
}

func NewService(termRepository Repository, transactionScoper dbx.TransactionScoper) Service {
	return &service{
		termRepository:    termRepository,
		transactionScoper: transactionScoper,
	}
}

func (s *service) FindTerms(ctx context.Context, options *FindOptions) ([]*Term, error) {
	if options == nil {
		options = &FindOptions{}
	}
	return s.termRepository.FindAll(ctx, options)
}

func (s *service) FindTermsByPostIds(ctx context.Context, postIds []int64) (map[int64][]*Term, error) {
	return dbx.InReadScopeWithResult(ctx, s.transactionScoper, func(ctx context.Context) (map[int64][]*Term, error) {
		termIdsByPostId, err := s.termRepository.FindTermIdsByPostIds(ctx, postIds)
		if err != nil {
			return nil, err
		}

		seen := make(map[int64]struct{})
		var termIds []int64
		for _, ids := range termIdsByPostId {
			for _, id := range ids {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				termIds = append(termIds, id)
			}
		}

		result := make(map[int64][]*Term, len(termIdsByPostId))
		if len(termIds) == 0 {
			return result, nil
		}

		terms, err := s.termRepository.FindAll(ctx, &FindOptions{Ids: termIds})
		if err != nil {
			return nil, err
		}
		termsById := make(map[int64]*Term, len(terms))
		for _, t := range terms {
			termsById[t.Id] = t
		}

		for postId, ids := range termIdsByPostId {
			for _, id := range ids {
				if t, ok := termsById[id]; ok {
					result[postId] = append(result[postId], t)
				}
			}
		}
		return result, nil
	})
}

func (s *service) CreateTerm(ctx context.Context, options *CreateOptions) (*Term, error) {
	t, err := processCreateTerm(options)
	if err != nil {
		return nil, err
	}
	return s.termRepository.Create(ctx, t)
}

func (s *service) SetPostTerms(ctx context.Context, postId int64, termIds []int64) error {
	if postId <= 0 {
		return ErrPostIdInvalid
	}
	return s.transactionScoper.InTransactionScope(ctx, func(ctx context.Context) error {
		if len(termIds) != 0 {
			terms, err := s.termRepository.FindAll(ctx, &FindOptions{Ids: termIds})
			if err != nil {
				return err
			}
			if len(terms) != len(uniqueIds(termIds)) {
				return ErrTermNotFound
			}
		}
		return s.termRepository.SetPostTerms(ctx, postId, termIds)
	})
}

func processCreateTerm(options *CreateOptions) (*Term, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	name := strings.TrimSpace(options.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if options.Taxonomy == "" {
		return nil, ErrTaxonomyRequired
	}

	termSlug := options.Slug
	if termSlug == "" {
		termSlug = slug.Make(name)
	}
	if !govalidator.Matches(termSlug, "^[a-z0-9]+(-[a-z0-9]+)*$") {
		return nil, ErrSlugInvalid
	}

	return &Term{
		Name:     name,
		Slug:     termSlug,
		Taxonomy: options.Taxonomy,
	}, nil
}

func uniqueIds(ids []int64) map[int64]struct{} {
	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	return unique
}
