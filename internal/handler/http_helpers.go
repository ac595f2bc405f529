package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// pageTagOf resolves which public page a collection request targets. The
// flexpay aliases force the flexpay tag; otherwise an explicit ?page= query
// wins and the default page is assumed.
func pageTagOf(c *gin.Context) string {
	if strings.HasPrefix(c.Request.URL.Path, "/api/flexpay/") {
		return "flexpay"
	}
	return strings.TrimSpace(c.Query("page"))
}
