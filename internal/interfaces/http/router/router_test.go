package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestRouter_VersionedPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	group := NewDomainGroup("inventory", "/inventory")
	group.GET("/items", ok)
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v2/inventory/items", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/inventory/items", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Middleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Probe", "seen")
		c.Next()
	})

	group := NewDomainGroup("partner", "/partner")
	group.GET("/suppliers", ok)
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/partner/suppliers", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seen", w.Header().Get("X-Probe"))
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("identity", "/identity")
	group.POST("/users", ok).
		GET("/users", ok).
		PUT("/users/:id", ok).
		DELETE("/users/:id", ok)
	r.Register(group)
	r.Setup()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/identity/users"},
		{http.MethodGet, "/api/v1/identity/users"},
		{http.MethodPut, "/api/v1/identity/users/42"},
		{http.MethodDelete, "/api/v1/identity/users/42"},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tc.method, tc.path, nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
	}

	assert.Equal(t, "identity", group.Name())
}

func TestDomainGroup_GroupMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	guarded := NewDomainGroup("inventory", "/inventory")
	guarded.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	})
	guarded.GET("/items", ok)

	open := NewDomainGroup("system", "/system")
	open.GET("/ping", ok)

	r.Register(guarded).Register(open)
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/inventory/items", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
