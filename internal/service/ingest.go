package service

import (
	"context"
	"log/slog"
	"time"

	"community_sync/internal/config"
	"community_sync/internal/domain"
)

const updateFailLabel = "updateFailLabel"

// IngestService runs the article ingestion pipeline for one sync
// request at a time. It holds no per-request state and takes no locks;
// the stores own any concurrency control they need.
type IngestService struct {
	users     UserDirectory
	articles  ArticleStore
	clients   ClientStore
	tags      TagPolicy
	labels    Labels
	publisher Publisher
	logger    *slog.Logger
	policy    string
	now       func() time.Time
}

func NewIngestService(
	users UserDirectory,
	articles ArticleStore,
	clients ClientStore,
	tags TagPolicy,
	labels Labels,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		users:     users,
		articles:  articles,
		clients:   clients,
		tags:      tags,
		labels:    labels,
		publisher: publisher,
		logger:    logger,
		policy:    cfg.Policy,
		now:       time.Now,
	}
}

// SyncArticle runs the pipeline stages in order: caller resolution,
// content transformation, tag normalization, the add-or-update
// decision, and the client registry upsert. Caller resolution is the
// one hard gate; once it has passed, the registry upsert runs no
// matter how ingestion itself turned out.
func (s *IngestService) SyncArticle(ctx context.Context, req domain.SyncRequest) domain.SyncResult {
	caller, err := s.resolveCaller(ctx, req)
	if err != nil {
		return domain.Rejected()
	}

	result := s.ingestArticle(ctx, req, caller)

	s.upsertClient(ctx, req)

	return result
}

func (s *IngestService) resolveCaller(ctx context.Context, req domain.SyncRequest) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, req.ClientAdminEmail)
	if err != nil {
		s.logger.Error("user directory lookup failed",
			"email", req.ClientAdminEmail,
			"error", err,
		)
		return nil, err
	}
	if user == nil {
		s.logger.Warn("user not found in community",
			"email", req.ClientAdminEmail,
			"host", req.ClientHost,
		)
		return nil, domain.ErrUnknownCaller
	}
	if user.Status != domain.UserStatusValid {
		s.logger.Warn("user has been forbidden",
			"name", user.Name,
			"email", req.ClientAdminEmail,
			"host", req.ClientHost,
		)
		return nil, domain.ErrForbiddenCaller
	}
	return user, nil
}

func (s *IngestService) ingestArticle(ctx context.Context, req domain.SyncRequest, caller *domain.User) domain.SyncResult {
	article := buildBaseArticle(req, caller)

	existing, err := s.articles.FindByClientArticleID(ctx, caller.ID, article.ClientArticleID)
	if err != nil {
		s.logger.Error("article lookup failed",
			"author_id", caller.ID,
			"client_article_id", article.ClientArticleID,
			"error", err,
		)
		return s.softFailure(err)
	}

	decision := decideIngest(s.policy, existing)

	content := req.Article.Content
	if decision.update {
		article.ID = decision.existingID
		article.IsBroadcast = false
	} else {
		article.IsBroadcast = req.Article.Permalink == broadcastPermalink
		content += attributionFooter(article.IsBroadcast, req.ClientHost, req.Article.Permalink, req.ClientName)
	}
	article.Content = content

	formatted, err := s.tags.FormatTags(req.Article.Tags)
	if err != nil {
		s.logger.Warn("tag formatting failed", "tags", req.Article.Tags, "error", err)
		return s.softFailure(err)
	}
	formatted = s.tags.FilterReserved(formatted, caller.Role)
	formatted, err = s.tags.FormatTags(formatted)
	if err != nil {
		s.logger.Warn("tag formatting failed", "tags", formatted, "error", err)
		return s.softFailure(err)
	}
	article.Tags = formatted

	if decision.update {
		err = s.articles.Update(ctx, &article)
	} else {
		err = s.articles.Add(ctx, &article)
	}
	if err != nil {
		s.logger.Error("persist article failed",
			"author_id", caller.ID,
			"client_article_id", article.ClientArticleID,
			"error", err,
		)
		return s.softFailure(err)
	}

	s.publish(ctx, &article, !decision.update)

	return domain.Accepted()
}

// ingestDecision is the outcome of the add-vs-update policy.
type ingestDecision struct {
	update     bool
	existingID int64
}

// decideIngest applies the configured policy to the lookup result.
// Under PolicyAlwaysAdd every request is a fresh add even when a prior
// sync exists, preserving the full history of syndicated edits;
// PolicyUpdateExisting edits the match in place.
func decideIngest(policy string, existing *domain.ArticleRecord) ingestDecision {
	if policy == config.PolicyUpdateExisting && existing != nil {
		return ingestDecision{update: true, existingID: existing.ID}
	}
	return ingestDecision{}
}

// upsertClient records or refreshes the calling application's
// registration. It is the durable record of "this client attempted a
// sync", so it runs even when ingestion failed; its own errors are
// logged and swallowed.
func (s *IngestService) upsertClient(ctx context.Context, req domain.SyncRequest) {
	existing, err := s.clients.FindByAdminEmail(ctx, req.ClientAdminEmail)
	if err != nil {
		s.logger.Error("client lookup failed", "email", req.ClientAdminEmail, "error", err)
		return
	}

	now := s.now().UnixMilli()

	if existing == nil {
		client := domain.ClientRegistration{
			AdminEmail:        req.ClientAdminEmail,
			Host:              req.ClientHost,
			Name:              req.ClientName,
			RuntimeEnv:        req.ClientRuntimeEnv,
			Version:           req.ClientVersion,
			LastArticleSyncAt: now,
			LastCommentSyncAt: 0,
		}
		if err := s.clients.Add(ctx, &client); err != nil {
			s.logger.Error("register client failed", "email", req.ClientAdminEmail, "error", err)
		}
		return
	}

	existing.Host = req.ClientHost
	existing.Name = req.ClientName
	existing.RuntimeEnv = req.ClientRuntimeEnv
	existing.Version = req.ClientVersion
	existing.LastArticleSyncAt = now

	if err := s.clients.Update(ctx, existing); err != nil {
		s.logger.Error("refresh client failed", "email", req.ClientAdminEmail, "error", err)
	}
}

func (s *IngestService) publish(ctx context.Context, article *domain.ArticleRecord, isNew bool) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, article, isNew); err != nil {
		s.logger.Error("publish synced article failed",
			"client_article_id", article.ClientArticleID,
			"error", err,
		)
	}
}

func (s *IngestService) softFailure(err error) domain.SyncResult {
	return domain.SoftFailure(s.labels.Get(updateFailLabel) + " - " + err.Error())
}
