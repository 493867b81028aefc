package model

import (
	"time"
)

type User struct {
	ID          int64               `json:"id"`
	Login       string              `json:"login"`
	DisplayName string              `json:"displayName"`
	Meta        map[string][]string `json:"meta,omitempty"`
}

type Term struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

type Post struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	Author       *User               `json:"author"`
	Meta         map[string][]string `json:"meta,omitempty"`
	Terms        []*Term             `json:"terms"`
	CommentCount *int                `json:"commentCount"`
}

type Error struct {
	Error string `json:"error"`
}
