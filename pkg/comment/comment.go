package comment

import (
	"time"
)

type Comment struct {
	Id        int64
	PostId    int64
	Author    string
	Content   string
	Approved  bool
	CreatedAt time.Time
}
