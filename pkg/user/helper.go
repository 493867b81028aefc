package user

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	cost = 12
)

func generatePassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, cost)
}
