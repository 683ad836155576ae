//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"community_sync/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB

	users    *UserStore
	articles *ArticleStore
	clients  *ClientStore

	authorID int64
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.RunContainer(s.ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.users = NewUserStore(db)
	s.articles = NewArticleStore(db)
	s.clients = NewClientStore(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM article_tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM clients")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")

	err := s.db.QueryRowxContext(s.ctx, `
		INSERT INTO users (name, email, status, role)
		VALUES ('alice', 'a@x.com', 0, 'regular')
		RETURNING id`,
	).Scan(&s.authorID)
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) article() *domain.ArticleRecord {
	return &domain.ArticleRecord{
		Title:           "T",
		Content:         "C",
		Tags:            "go,rust",
		AuthorID:        s.authorID,
		AuthorEmail:     "a@x.com",
		ClientArticleID: "13880209",
		ClientPermalink: "http://h/p1",
	}
}

func (s *PostgresIntegrationSuite) TestUserStore_FindByEmail() {
	user, err := s.users.FindByEmail(s.ctx, "a@x.com")

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal(s.authorID, user.ID)
	s.Equal("alice", user.Name)
	s.Equal(domain.UserStatusValid, user.Status)
	s.Equal(domain.RoleRegular, user.Role)
}

func (s *PostgresIntegrationSuite) TestUserStore_FindByEmail_Missing() {
	user, err := s.users.FindByEmail(s.ctx, "nobody@x.com")

	s.NoError(err)
	s.Nil(user)
}

func (s *PostgresIntegrationSuite) TestArticleStore_AddAndFind() {
	article := s.article()

	err := s.articles.Add(s.ctx, article)
	s.Require().NoError(err)
	s.NotZero(article.ID)

	found, err := s.articles.FindByClientArticleID(s.ctx, s.authorID, "13880209")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(article.ID, found.ID)
	s.Equal("T", found.Title)
	s.Equal("go,rust", found.Tags)

	var links int
	err = s.db.GetContext(s.ctx, &links,
		"SELECT count(*) FROM article_tags WHERE article_id = $1", article.ID)
	s.NoError(err)
	s.Equal(2, links)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Find_Missing() {
	found, err := s.articles.FindByClientArticleID(s.ctx, s.authorID, "nope")

	s.NoError(err)
	s.Nil(found)
}

func (s *PostgresIntegrationSuite) TestArticleStore_DuplicateAddsKeepBothRows() {
	first := s.article()
	s.Require().NoError(s.articles.Add(s.ctx, first))

	second := s.article()
	second.Title = "T2"
	s.Require().NoError(s.articles.Add(s.ctx, second))

	s.NotEqual(first.ID, second.ID)

	found, err := s.articles.FindByClientArticleID(s.ctx, s.authorID, "13880209")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(second.ID, found.ID)

	var count int
	err = s.db.GetContext(s.ctx, &count,
		"SELECT count(*) FROM articles WHERE author_id = $1 AND client_article_id = $2",
		s.authorID, "13880209")
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Update() {
	article := s.article()
	s.Require().NoError(s.articles.Add(s.ctx, article))

	article.Title = "T updated"
	article.Content = "C updated"
	article.Tags = "go"

	err := s.articles.Update(s.ctx, article)
	s.Require().NoError(err)

	found, err := s.articles.FindByClientArticleID(s.ctx, s.authorID, "13880209")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal("T updated", found.Title)
	s.Equal("C updated", found.Content)
	s.Equal("go", found.Tags)

	var links int
	err = s.db.GetContext(s.ctx, &links,
		"SELECT count(*) FROM article_tags WHERE article_id = $1", article.ID)
	s.NoError(err)
	s.Equal(1, links)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Update_Missing() {
	article := s.article()
	article.ID = 999999

	err := s.articles.Update(s.ctx, article)

	s.Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *PostgresIntegrationSuite) TestClientStore_AddAndFind() {
	client := &domain.ClientRegistration{
		AdminEmail:        "a@x.com",
		Host:              "http://h",
		Name:              "App",
		RuntimeEnv:        "GO",
		Version:           "0.1",
		LastArticleSyncAt: 1234,
		LastCommentSyncAt: 0,
	}

	err := s.clients.Add(s.ctx, client)
	s.Require().NoError(err)

	found, err := s.clients.FindByAdminEmail(s.ctx, "a@x.com")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(*client, *found)
}

func (s *PostgresIntegrationSuite) TestClientStore_Find_Missing() {
	found, err := s.clients.FindByAdminEmail(s.ctx, "nobody@x.com")

	s.NoError(err)
	s.Nil(found)
}

func (s *PostgresIntegrationSuite) TestClientStore_UpdateKeepsCommentSyncTime() {
	client := &domain.ClientRegistration{
		AdminEmail:        "a@x.com",
		Host:              "http://h",
		Name:              "App",
		RuntimeEnv:        "GO",
		Version:           "0.1",
		LastArticleSyncAt: 1234,
		LastCommentSyncAt: 777,
	}
	s.Require().NoError(s.clients.Add(s.ctx, client))

	client.Host = "http://h2"
	client.Version = "0.2"
	client.LastArticleSyncAt = 5678
	// Update must not touch this column even when the struct differs.
	client.LastCommentSyncAt = 0

	err := s.clients.Update(s.ctx, client)
	s.Require().NoError(err)

	found, err := s.clients.FindByAdminEmail(s.ctx, "a@x.com")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal("http://h2", found.Host)
	s.Equal("0.2", found.Version)
	s.Equal(int64(5678), found.LastArticleSyncAt)
	s.Equal(int64(777), found.LastCommentSyncAt)
}
