package cache

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCacheMiddleware serves cached HTML for public GET requests and captures
// fresh 200 responses into the cache. Requests with a query string bypass the
// cache so filtered views are always rendered live.
func PageCacheMiddleware(cache PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if html, ok := cache.Get(c.Request.Context(), path); ok {
			c.Header("X-Page-Cache", "hit")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}
		contentType := writer.Header().Get("Content-Type")
		if !strings.HasPrefix(contentType, "text/html") {
			return
		}

		if err := cache.Set(c.Request.Context(), path, writer.body.String()); err != nil {
			log.Printf("page cache store failed for %s: %v", path, err)
		}
	}
}
