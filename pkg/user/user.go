package user

import (
	"time"
)

type User struct {
	Id          int64
	Login       string
	Email       string
	DisplayName string
	Password    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
