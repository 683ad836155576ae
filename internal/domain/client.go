package domain

// ClientRegistration is the platform's record of a third-party
// application, keyed by its administrator's email. Sync timestamps are
// unix milliseconds; a zero LastCommentSyncAt means the client has
// never pushed a comment.
type ClientRegistration struct {
	AdminEmail        string `db:"admin_email"`
	Host              string `db:"host"`
	Name              string `db:"name"`
	RuntimeEnv        string `db:"runtime_env"`
	Version           string `db:"version"`
	LastArticleSyncAt int64  `db:"last_article_sync_at"`
	LastCommentSyncAt int64  `db:"last_comment_sync_at"`
}
