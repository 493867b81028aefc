package config

import (
	"time"
)

type QueryCache struct {
	Enabled         bool          `default:"false"`
	Expiration      time.Duration `default:"1m"`
	CleanupInterval time.Duration `split_words:"true" default:"5m"`
}
