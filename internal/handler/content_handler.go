package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/service"
)

// GetContent returns the stored record for a section key. Absent sections are
// a 404; public pages fall back to their built-in defaults on any non-200.
func (a *API) GetContent(c *gin.Context) {
	key := c.Param("section")

	payload, err := a.content.GetSection(key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			respondError(c, http.StatusNotFound, "content not found")
		case errors.Is(err, service.ErrSectionKeyMissing):
			respondError(c, http.StatusBadRequest, "invalid section key")
		default:
			respondError(c, http.StatusInternalServerError, "failed to load content")
		}
		return
	}

	c.JSON(http.StatusOK, payload)
}

// UpdateContent upserts a section record. The stored value is replaced as a
// whole; identity fields in the payload are stripped before writing and the
// persisted record is returned.
func (a *API) UpdateContent(c *gin.Context) {
	key := c.Param("section")

	var payload map[string]any
	if !bindJSON(c, &payload, "invalid content payload") {
		return
	}

	saved, err := a.content.SaveSection(key, payload)
	if err != nil {
		if errors.Is(err, service.ErrSectionKeyMissing) {
			respondError(c, http.StatusBadRequest, "invalid section key")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save content")
		return
	}

	c.JSON(http.StatusOK, saved)
}
