package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Mutating routes must reject requests that reach them without the auth
// middleware having set a user id, instead of panicking on the type assertion.
func TestHandlersRejectMissingAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/posts", NewPostHandler(nil).CreatePost)
	siteHandler := NewSiteHandler(nil)
	router.POST("/sites", siteHandler.CreateSite)
	router.POST("/sites/:siteId/spaces", siteHandler.CreateSpace)
	router.GET("/profile", NewAuthHandler(nil).GetProfile)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{"POST", "/posts"},
		{"POST", "/sites"},
		{"POST", "/sites/00000000-0000-0000-0000-000000000000/spaces"},
		{"GET", "/profile"},
	} {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}
}
