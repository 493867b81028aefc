package post

import (
	"time"
)

type Status string

const (
	StatusPublish Status = "publish"
	StatusDraft   Status = "draft"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPublish, StatusDraft:
		return true
	default:
		return false
	}
}

type Post struct {
	Id        int64
	AuthorId  int64
	Title     string
	Content   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
