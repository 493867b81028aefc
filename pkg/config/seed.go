package config

type Seed struct {
	Enabled bool `default:"true"`
}
