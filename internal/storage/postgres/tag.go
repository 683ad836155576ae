package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// syncTagLinks refreshes the tag rows and article_tags links for one
// article from its canonical comma separated tag string. Tag rows are
// shared across articles and upserted by label.
func syncTagLinks(ctx context.Context, ex sqlx.ExtContext, articleID int64, tags string) error {
	_, err := ex.ExecContext(ctx,
		"DELETE FROM article_tags WHERE article_id = $1",
		articleID,
	)
	if err != nil {
		return fmt.Errorf("unlink tags: %w", err)
	}

	if tags == "" {
		return nil
	}

	for _, label := range strings.Split(tags, ",") {
		var tagID int64
		err := ex.QueryRowxContext(ctx, `
			INSERT INTO tags (label) VALUES ($1)
			ON CONFLICT (label) DO UPDATE SET label = EXCLUDED.label
			RETURNING id`,
			label,
		).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", label, err)
		}

		_, err = ex.ExecContext(ctx, `
			INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			articleID, tagID,
		)
		if err != nil {
			return fmt.Errorf("link tag %q: %w", label, err)
		}
	}

	return nil
}
