package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"community_sync/internal/domain"
)

type ClientStore struct {
	db *sqlx.DB
}

func NewClientStore(db *sqlx.DB) *ClientStore {
	return &ClientStore{db: db}
}

func (s *ClientStore) FindByAdminEmail(ctx context.Context, email string) (*domain.ClientRegistration, error) {
	query := `
		SELECT admin_email, host, name, runtime_env, version,
		       last_article_sync_at, last_comment_sync_at
		FROM clients
		WHERE admin_email = $1`

	var client domain.ClientRegistration
	err := s.db.GetContext(ctx, &client, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientStore) Add(ctx context.Context, client *domain.ClientRegistration) error {
	query := `
		INSERT INTO clients (
			admin_email, host, name, runtime_env, version,
			last_article_sync_at, last_comment_sync_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		client.AdminEmail,
		client.Host,
		client.Name,
		client.RuntimeEnv,
		client.Version,
		client.LastArticleSyncAt,
		client.LastCommentSyncAt,
	)
	return err
}

// Update refreshes the registration; last_comment_sync_at is owned by
// the comment sync path and deliberately left untouched here.
func (s *ClientStore) Update(ctx context.Context, client *domain.ClientRegistration) error {
	query := `
		UPDATE clients SET
			host = $2,
			name = $3,
			runtime_env = $4,
			version = $5,
			last_article_sync_at = $6
		WHERE admin_email = $1`

	_, err := s.db.ExecContext(ctx, query,
		client.AdminEmail,
		client.Host,
		client.Name,
		client.RuntimeEnv,
		client.Version,
		client.LastArticleSyncAt,
	)
	return err
}
