package model

import (
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

func ToUser(u *user.User, userMeta meta.Values) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:          u.Id,
		Login:       u.Login,
		DisplayName: u.DisplayName,
		Meta:        userMeta,
	}
}

func ToTerm(t *term.Term) *Term {
	if t == nil {
		return nil
	}
	return &Term{
		ID:       t.Id,
		Name:     t.Name,
		Slug:     t.Slug,
		Taxonomy: string(t.Taxonomy),
	}
}

func ToPost(p *post.Post) *Post {
	if p == nil {
		return nil
	}
	return &Post{
		ID:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		Terms:     []*Term{},
	}
}
