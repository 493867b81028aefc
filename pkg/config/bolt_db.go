package config

import (
	"time"
)

type BoltDB struct {
	Path    string        `default:"data/pressload.db"`
	Timeout time.Duration `default:"5s"`
}
