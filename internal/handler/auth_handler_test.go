package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func newAuthEngine(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("suncoop_session", store))
	r.POST("/api/auth/login", api.LoginAPI)
	r.GET("/admin/dashboard", AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func TestLoginAPICorrectPassword(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	r := newAuthEngine(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{"password": testAdminPassword}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected a session cookie on successful login")
	}
}

func TestLoginAPIWrongPassword(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	r := newAuthEngine(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{"password": "wrong"}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestLoginAPIEmptyPassword(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	r := newAuthEngine(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{"password": ""}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	r := newAuthEngine(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", loc)
	}
}

func TestAuthRequiredAllowsLoggedInSession(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	r := newAuthEngine(api)

	login := httptest.NewRecorder()
	r.ServeHTTP(login, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{"password": testAdminPassword}))
	if login.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", login.Code, login.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, ck := range login.Result().Cookies() {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "dashboard" {
		t.Fatalf("expected dashboard after login, got %d %q", w.Code, w.Body.String())
	}
}
