package meta

import (
	"context"
	"strings"
)

type Service interface {
	// FindMeta returns the meta of every object that has at least one entry.
	FindMeta(ctx context.Context, kind Kind, objectIds []int64) (map[int64]Values, error)
	AddMeta(ctx context.Context, kind Kind, objectId int64, key string, value string) error
}

type service struct {
	metaRepository Repository
}

func NewService(metaRepository Repository) Service {
	return &service{
		metaRepository: metaRepository,
	}
}

func (s *service) FindMeta(ctx context.Context, kind Kind, objectIds []int64) (map[int64]Values, error) {
	if !kind.Valid() {
		return nil, ErrKindInvalid
	}
	if len(objectIds) == 0 {
		return map[int64]Values{}, nil
	}
	return s.metaRepository.FindByObjectIds(ctx, kind, objectIds)
}

func (s *service) AddMeta(ctx context.Context, kind Kind, objectId int64, key string, value string) error {
	if !kind.Valid() {
		return ErrKindInvalid
	}
	if objectId <= 0 {
		return ErrObjectIdInvalid
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrKeyRequired
	}
	return s.metaRepository.Add(ctx, kind, objectId, key, value)
}
