package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"community_sync/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	ID              int64  `db:"id"`
	Title           string `db:"title"`
	Content         string `db:"content"`
	Tags            string `db:"tags"`
	AuthorID        int64  `db:"author_id"`
	AuthorEmail     string `db:"author_email"`
	EditorType      int    `db:"editor_type"`
	SyncToClient    bool   `db:"sync_to_client"`
	ClientArticleID string `db:"client_article_id"`
	ClientPermalink string `db:"client_permalink"`
	IsBroadcast     bool   `db:"is_broadcast"`
}

func (r articleRow) toRecord() *domain.ArticleRecord {
	return &domain.ArticleRecord{
		ID:              r.ID,
		Title:           r.Title,
		Content:         r.Content,
		Tags:            r.Tags,
		AuthorID:        r.AuthorID,
		AuthorEmail:     r.AuthorEmail,
		EditorType:      r.EditorType,
		SyncToClient:    r.SyncToClient,
		ClientArticleID: r.ClientArticleID,
		ClientPermalink: r.ClientPermalink,
		IsBroadcast:     r.IsBroadcast,
	}
}

// FindByClientArticleID returns the most recently synchronized article
// for the pair. The always-add policy can leave several matches; the
// newest one is the update target.
func (s *ArticleStore) FindByClientArticleID(ctx context.Context, authorID int64, clientArticleID string) (*domain.ArticleRecord, error) {
	query := `
		SELECT id, title, content, tags, author_id, author_email, editor_type,
		       sync_to_client, client_article_id, client_permalink, is_broadcast
		FROM articles
		WHERE author_id = $1 AND client_article_id = $2
		ORDER BY id DESC
		LIMIT 1`

	var row articleRow
	err := s.db.GetContext(ctx, &row, query, authorID, clientArticleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toRecord(), nil
}

func (s *ArticleStore) Add(ctx context.Context, article *domain.ArticleRecord) error {
	return withTransaction(ctx, s.db, func(txCtx context.Context) error {
		ex := executor(txCtx, s.db)

		query := `
			INSERT INTO articles (
				title, content, tags, author_id, author_email, editor_type,
				sync_to_client, client_article_id, client_permalink, is_broadcast
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`

		err := ex.QueryRowxContext(txCtx, query,
			article.Title,
			article.Content,
			article.Tags,
			article.AuthorID,
			article.AuthorEmail,
			article.EditorType,
			article.SyncToClient,
			article.ClientArticleID,
			article.ClientPermalink,
			article.IsBroadcast,
		).Scan(&article.ID)
		if err != nil {
			return fmt.Errorf("insert article: %w", err)
		}

		return syncTagLinks(txCtx, ex, article.ID, article.Tags)
	})
}

func (s *ArticleStore) Update(ctx context.Context, article *domain.ArticleRecord) error {
	return withTransaction(ctx, s.db, func(txCtx context.Context) error {
		ex := executor(txCtx, s.db)

		query := `
			UPDATE articles SET
				title = $2,
				content = $3,
				tags = $4,
				author_email = $5,
				client_permalink = $6,
				is_broadcast = $7,
				updated_at = now()
			WHERE id = $1`

		res, err := ex.ExecContext(txCtx, query,
			article.ID,
			article.Title,
			article.Content,
			article.Tags,
			article.AuthorEmail,
			article.ClientPermalink,
			article.IsBroadcast,
		)
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("article %d not found", article.ID)
		}

		return syncTagLinks(txCtx, ex, article.ID, article.Tags)
	})
}
