package config

import "time"

type SecurityConfig interface {
	GetSessionSecret() string
	GetSessionLifetime() time.Duration
	GetAuthStateLifetime() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "")
}

func (Security) GetSessionLifetime() time.Duration {
	return 30 * 24 * time.Hour // Sessions expire after 30 days
}

func (Security) GetAuthStateLifetime() time.Duration {
	return 10 * time.Minute // OAuth state cookie - long enough for the provider round-trip
}
