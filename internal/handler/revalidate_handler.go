package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type revalidateRequest struct {
	Path string `json:"path"`
}

// Revalidate drops the cached render of a path so the next request
// recomputes it. The path comes from the JSON body or the ?path= query and
// defaults to the site root. Admin saves call this after every content write;
// a failure here never rolls the write back.
func (a *API) Revalidate(c *gin.Context) {
	path := strings.TrimSpace(c.Query("path"))
	if path == "" && c.Request.Method == http.MethodPost {
		var payload revalidateRequest
		if err := c.ShouldBindJSON(&payload); err == nil {
			path = strings.TrimSpace(payload.Path)
		}
	}
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if a.pages != nil {
		if err := a.pages.Invalidate(c.Request.Context(), path); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to revalidate path")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"revalidated": path})
}
