package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newCachedEngine(pages PageCache) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	renders := 0

	r := gin.New()
	r.Use(PageCacheMiddleware(pages))
	r.GET("/", func(c *gin.Context) {
		renders++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf("<html>render %d</html>", renders)))
	})
	r.GET("/broken", func(c *gin.Context) {
		renders++
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("<html>boom</html>"))
	})
	r.GET("/data", func(c *gin.Context) {
		renders++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, &renders
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageCacheMiddlewareServesCachedHTML(t *testing.T) {
	pages := NewMemoryCache(time.Minute)
	r, renders := newCachedEngine(pages)

	first := get(r, "/")
	if first.Code != http.StatusOK || first.Body.String() != "<html>render 1</html>" {
		t.Fatalf("unexpected first response: %d %q", first.Code, first.Body.String())
	}

	second := get(r, "/")
	if second.Body.String() != "<html>render 1</html>" {
		t.Fatalf("expected cached body, got %q", second.Body.String())
	}
	if second.Header().Get("X-Page-Cache") != "hit" {
		t.Fatal("expected cache hit header on second request")
	}
	if *renders != 1 {
		t.Fatalf("expected a single render, got %d", *renders)
	}
}

func TestPageCacheMiddlewareInvalidateForcesRerender(t *testing.T) {
	pages := NewMemoryCache(time.Minute)
	r, renders := newCachedEngine(pages)

	get(r, "/")
	get(r, "/")

	if err := pages.Invalidate(context.Background(), "/"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	third := get(r, "/")
	if third.Body.String() != "<html>render 2</html>" {
		t.Fatalf("expected fresh render after invalidation, got %q", third.Body.String())
	}
	if *renders != 2 {
		t.Fatalf("expected 2 renders, got %d", *renders)
	}
}

func TestPageCacheMiddlewareSkipsNonHTMLAndErrors(t *testing.T) {
	pages := NewMemoryCache(time.Minute)
	r, renders := newCachedEngine(pages)

	get(r, "/broken")
	get(r, "/broken")
	if *renders != 2 {
		t.Fatalf("expected error responses to bypass the cache, got %d renders", *renders)
	}

	*renders = 0
	get(r, "/data")
	get(r, "/data")
	if *renders != 2 {
		t.Fatalf("expected JSON responses to bypass the cache, got %d renders", *renders)
	}
}

func TestPageCacheMiddlewareSkipsQueryStrings(t *testing.T) {
	pages := NewMemoryCache(time.Minute)
	r, renders := newCachedEngine(pages)

	get(r, "/?page=2")
	get(r, "/?page=2")
	if *renders != 2 {
		t.Fatalf("expected query requests to bypass the cache, got %d renders", *renders)
	}
}
