package domain

// ArticlePayload is the article part of the wire payload.
type ArticlePayload struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Tags            string `json:"tags"`
	Permalink       string `json:"permalink"`
	ClientArticleID string `json:"clientArticleId"`
}

// SyncRequest is the JSON body of POST /api/article. All fields are
// caller-supplied and untrusted.
type SyncRequest struct {
	Article          ArticlePayload `json:"article"`
	ClientAdminEmail string         `json:"clientAdminEmail"`
	ClientName       string         `json:"clientName"`
	ClientVersion    string         `json:"clientVersion"`
	ClientHost       string         `json:"clientHost"`
	ClientRuntimeEnv string         `json:"clientRuntimeEnv"`
}

// ArticleRecord is the canonical article handed to the store.
// ID is zero except on the update path, where it carries the id of the
// previously synchronized article.
type ArticleRecord struct {
	ID              int64
	Title           string
	Content         string
	Tags            string
	AuthorID        int64
	AuthorEmail     string
	EditorType      int
	SyncToClient    bool
	ClientArticleID string
	ClientPermalink string
	IsBroadcast     bool
}
