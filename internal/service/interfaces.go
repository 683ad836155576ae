package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"community_sync/internal/domain"
)

// UserDirectory resolves platform users. Read-only.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ArticleStore interface {
	// FindByClientArticleID returns the most recently synchronized
	// article for the pair, or nil when none exists.
	FindByClientArticleID(ctx context.Context, authorID int64, clientArticleID string) (*domain.ArticleRecord, error)
	Add(ctx context.Context, article *domain.ArticleRecord) error
	Update(ctx context.Context, article *domain.ArticleRecord) error
}

type ClientStore interface {
	// FindByAdminEmail returns nil when the client has never registered.
	FindByAdminEmail(ctx context.Context, email string) (*domain.ClientRegistration, error)
	Add(ctx context.Context, client *domain.ClientRegistration) error
	Update(ctx context.Context, client *domain.ClientRegistration) error
}

// TagPolicy owns canonical tag formatting and the reserved tag set.
type TagPolicy interface {
	FormatTags(raw string) (string, error)
	FilterReserved(tags string, role domain.UserRole) string
}

// Labels resolves human-readable message labels.
type Labels interface {
	Get(key string) string
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.ArticleRecord, isNew bool) error
	Close() error
}
