package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"commune-cms/handlers"
	"commune-cms/middleware"
	"commune-cms/migration"
	"commune-cms/models"
	"commune-cms/repositories"
	"commune-cms/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
	userID uuid.UUID
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		suite.T().Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}
	suite.db = db

	suite.dropAll()
	if err := migration.NewRunner(db, zap.NewNop()).Run(); err != nil {
		suite.T().Fatal("Failed to run migrations:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) dropAll() {
	for _, table := range migration.LegacyTables {
		suite.db.Exec("DROP TABLE IF EXISTS " + table.Name + " CASCADE")
	}
	for _, table := range []string{
		"post_tags", "posts", "content_tags", "tags", "spaces", "sites",
		"users", "schema_migrations",
	} {
		suite.db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE")
	}
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(suite.db)
	postRepo := repositories.NewPostRepository(suite.db)
	siteRepo := repositories.NewSiteRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	siteService := services.NewSiteService(siteRepo, services.NewBrandLookupFromEnv())
	tagService := services.NewTagService(tagRepo, siteRepo)

	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	siteHandler := handlers.NewSiteHandler(siteService)
	tagHandler := handlers.NewTagHandler(tagService)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			posts := protected.Group("/posts")
			{
				posts.GET("/site/:siteId", postHandler.GetPostsBySite)
				posts.GET("/:postId", postHandler.GetPost)
				posts.POST("", postHandler.CreatePost)
				posts.PUT("/:postId", postHandler.UpdatePost)
				posts.DELETE("/:postId", postHandler.DeletePost)
			}

			sites := protected.Group("/sites")
			{
				sites.GET("", siteHandler.GetSites)
				sites.GET("/:siteId", siteHandler.GetSite)
				sites.POST("", siteHandler.CreateSite)
				sites.POST("/:siteId/spaces", siteHandler.CreateSpace)
				sites.GET("/:siteId/spaces", siteHandler.GetSpaces)
				sites.POST("/:siteId/reconcile", siteHandler.ReconcileSpaces)
				sites.GET("/:siteId/tags", tagHandler.GetTags)
				sites.POST("/:siteId/tags", tagHandler.CreateTag)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	suite.dropAll()
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE TABLE post_tags, posts, tags, spaces, sites, users CASCADE")
	suite.registerAndLoginTestUser()
}

func (suite *IntegrationTestSuite) perform(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) registerAndLoginTestUser() {
	suite.token = ""
	w := suite.perform("POST", "/api/v1/auth/register", models.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
		Role:     models.RoleAdmin,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp models.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.token = resp.Token
	suite.userID = resp.User.ID
}

func (suite *IntegrationTestSuite) createSite(name string, subdomain *string, contentTypes []string) models.Site {
	w := suite.perform("POST", "/api/v1/sites", models.CreateSiteRequest{
		Name:                 name,
		Subdomain:            subdomain,
		SelectedContentTypes: contentTypes,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var site models.Site
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &site))
	return site
}

func (suite *IntegrationTestSuite) TestAuthFlow() {
	w := suite.perform("POST", "/api/v1/auth/login", models.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	suite.Equal(http.StatusOK, w.Code)

	var resp models.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal("testuser", resp.User.Username)

	w = suite.perform("GET", "/api/v1/profile", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestCreateSiteProvisionsSpaces() {
	site := suite.createSite("Acme Community", nil, []string{"discussion-type-id"})

	suite.Equal(models.SiteActive, site.Status)
	suite.Equal(suite.userID, site.OwnerID)

	w := suite.perform("GET", fmt.Sprintf("/api/v1/sites/%s/spaces", site.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var spaces []models.Space
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &spaces))
	suite.Require().Len(spaces, 1)
	suite.Equal("discussion-type-id", spaces[0].CMSType)
	suite.Equal("Discussions", spaces[0].Name)
	suite.Equal("discussions", spaces[0].Slug)

	// space_ids carries the provisioned space exactly once
	occurrences := 0
	for _, id := range site.SpaceIDs {
		if id == spaces[0].ID.String() {
			occurrences++
		}
	}
	suite.Equal(1, occurrences)
}

func (suite *IntegrationTestSuite) TestDuplicateSubdomainConflict() {
	subdomain := "acme"
	suite.createSite("First", &subdomain, nil)

	w := suite.perform("POST", "/api/v1/sites", models.CreateSiteRequest{
		Name:      "Second",
		Subdomain: &subdomain,
	})
	suite.Equal(http.StatusConflict, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.NotEmpty(body["message"])
}

func (suite *IntegrationTestSuite) TestGetSiteBySubdomain() {
	subdomain := "lookup"
	created := suite.createSite("Lookup Site", &subdomain, nil)

	w := suite.perform("GET", "/api/v1/sites/lookup", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var site models.Site
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &site))
	suite.Equal(created.ID, site.ID)
}

func (suite *IntegrationTestSuite) TestSpaceSlugRules() {
	site := suite.createSite("Slug Site", nil, nil)

	w := suite.perform("POST", fmt.Sprintf("/api/v1/sites/%s/spaces", site.ID), models.CreateSpaceRequest{
		Name: "Bad Slug", Slug: "Not A Slug", CMSType: "discussion",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.perform("POST", fmt.Sprintf("/api/v1/sites/%s/spaces", site.ID), models.CreateSpaceRequest{
		Name: "General", Slug: "general", CMSType: "discussion",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.perform("POST", fmt.Sprintf("/api/v1/sites/%s/spaces", site.ID), models.CreateSpaceRequest{
		Name: "General Again", Slug: "general", CMSType: "discussion",
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestReconcileSpaceIDs() {
	site := suite.createSite("Drift Site", nil, []string{"discussion"})
	suite.Require().Len(site.SpaceIDs, 1)

	// Corrupt the cache, then rebuild it from the spaces table.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE sites SET space_ids = '{}' WHERE id = ?", site.ID).Error)

	w := suite.perform("POST", fmt.Sprintf("/api/v1/sites/%s/reconcile", site.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var rebuilt models.Site
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rebuilt))
	suite.Equal([]string(site.SpaceIDs), []string(rebuilt.SpaceIDs))
}

func (suite *IntegrationTestSuite) createTag(siteID uuid.UUID, name string) models.Tag {
	w := suite.perform("POST", fmt.Sprintf("/api/v1/sites/%s/tags", siteID), models.CreateTagRequest{Name: name})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Tag `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func (suite *IntegrationTestSuite) TestPostLifecycle() {
	site := suite.createSite("Post Site", nil, []string{"discussion"})
	tag := suite.createTag(site.ID, "news")
	foreignTag := uuid.New()

	// Create: submitted fields round-trip; the foreign tag id is dropped.
	w := suite.perform("POST", "/api/v1/posts", models.CreatePostRequest{
		Title:           "Welcome",
		Content:         "First post",
		Status:          models.StatusPublished,
		SiteID:          site.ID,
		CMSType:         "discussion",
		OtherProperties: map[string]interface{}{"color": "red", "size": float64(10)},
		TagIDs:          []uuid.UUID{tag.ID, foreignTag},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal("Welcome", created.Title)
	suite.Equal("First post", created.Content)
	suite.Equal(models.StatusPublished, created.Status)
	suite.Equal(site.ID, created.SiteID)
	suite.NotNil(created.PublishedAt)
	suite.Require().Len(created.Tags, 1)
	suite.Equal(tag.ID, created.Tags[0].ID)

	// Get: hydrated author and tags.
	w = suite.perform("GET", "/api/v1/posts/"+created.ID.String(), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var detail models.PostDetail
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &detail))
	suite.Require().NotNil(detail.Author)
	suite.Equal("testuser", detail.Author.Username)
	suite.Len(detail.Tags, 1)

	// Update: partial, untouched fields keep their values; other_properties
	// merges with incoming keys winning.
	newContent := "Edited body"
	w = suite.perform("PUT", "/api/v1/posts/"+created.ID.String(), map[string]interface{}{
		"content":          newContent,
		"other_properties": map[string]interface{}{"size": float64(12), "shape": "round"},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("Welcome", updated.Title)
	suite.Equal(newContent, updated.Content)
	suite.Equal("red", updated.OtherProperties["color"])
	suite.Equal(float64(12), updated.OtherProperties["size"])
	suite.Equal("round", updated.OtherProperties["shape"])

	// Delete: 204, then 404, and no dangling tag links.
	w = suite.perform("DELETE", "/api/v1/posts/"+created.ID.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.perform("GET", "/api/v1/posts/"+created.ID.String(), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var linkCount int64
	suite.Require().NoError(suite.db.Table("post_tags").
		Where("post_id = ?", created.ID).Count(&linkCount).Error)
	suite.Equal(int64(0), linkCount)
}

func (suite *IntegrationTestSuite) TestTagReplacementOnUpdate() {
	site := suite.createSite("Tag Site", nil, nil)
	first := suite.createTag(site.ID, "alpha")
	second := suite.createTag(site.ID, "beta")

	w := suite.perform("POST", "/api/v1/posts", models.CreatePostRequest{
		Title:   "Tagged",
		Content: "body",
		SiteID:  site.ID,
		CMSType: "discussion",
		TagIDs:  []uuid.UUID{first.ID},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = suite.perform("PUT", "/api/v1/posts/"+created.ID.String(), map[string]interface{}{
		"tag_ids": []string{second.ID.String(), uuid.NewString()},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Require().Len(updated.Tags, 1)
	suite.Equal(second.ID, updated.Tags[0].ID)
}

func (suite *IntegrationTestSuite) TestListPostsFilters() {
	site := suite.createSite("List Site", nil, nil)

	for _, p := range []struct {
		title   string
		cmsType string
		status  models.ContentStatus
	}{
		{"A", "discussion", models.StatusPublished},
		{"B", "discussion", models.StatusDraft},
		{"C", "event", models.StatusPublished},
	} {
		w := suite.perform("POST", "/api/v1/posts", models.CreatePostRequest{
			Title: p.title, Content: "body", Status: p.status,
			SiteID: site.ID, CMSType: p.cmsType,
		})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := suite.perform("GET", fmt.Sprintf("/api/v1/posts/site/%s?cmsType=discussion", site.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var posts []models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Len(posts, 2)

	w = suite.perform("GET", fmt.Sprintf("/api/v1/posts/site/%s?status=published", site.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Len(posts, 2)

	w = suite.perform("GET", fmt.Sprintf("/api/v1/posts/site/%s?status=bogus", site.ID), nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.perform("GET", fmt.Sprintf("/api/v1/posts/site/%s?limit=1&offset=0", site.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Len(posts, 1)
}

func (suite *IntegrationTestSuite) TestInvalidStatusOnCreate() {
	site := suite.createSite("Status Site", nil, nil)

	w := suite.perform("POST", "/api/v1/posts", map[string]interface{}{
		"title":    "Bad",
		"content":  "body",
		"status":   "bogus",
		"site_id":  site.ID.String(),
		"cms_type": "discussion",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}
