package repository

import "context"

// Preference is one stored key/value row.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt string
}

type PreferenceRepo interface {
	Get(ctx context.Context, key string) (*Preference, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
