package service

import (
	"fmt"
	"strings"

	"community_sync/internal/domain"
)

// broadcastPermalink is the sentinel permalink marking a short
// broadcast post instead of a syndicated article. Exact match only.
const broadcastPermalink = "aBroadcast"

const (
	broadcastFooter = "\n\n<p class='fn-clear'><span class='fn-right'><span class='ft-small'>该广播来自</span> <i style='margin-right:5px;'><a target='_blank' href='%s'>%s</a></i></span></p>"
	syncedFooter    = "\n\n<p class='fn-clear'><span class='fn-right'><span class='ft-small'>该文章同步自</span> <i style='margin-right:5px;'><a target='_blank' href='%s'>%s</a></i></span></p>"
)

// buildBaseArticle assembles the canonical record from the request and
// the resolved caller. Content and tags are filled in by later stages.
func buildBaseArticle(req domain.SyncRequest, caller *domain.User) domain.ArticleRecord {
	return domain.ArticleRecord{
		Title:           req.Article.Title,
		AuthorID:        caller.ID,
		AuthorEmail:     strings.TrimSpace(strings.ToLower(req.ClientAdminEmail)),
		EditorType:      0,
		SyncToClient:    false,
		ClientArticleID: req.Article.ClientArticleID,
		ClientPermalink: req.ClientHost + req.Article.Permalink,
	}
}

// attributionFooter renders the provenance block appended to synced
// content. Broadcasts link the client host itself, articles link the
// original permalink on that host.
func attributionFooter(isBroadcast bool, host, permalink, name string) string {
	if isBroadcast {
		return fmt.Sprintf(broadcastFooter, host, name)
	}
	return fmt.Sprintf(syncedFooter, host+permalink, name)
}
