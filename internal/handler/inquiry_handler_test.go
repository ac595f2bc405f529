package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSubmitInquiry(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/inquiries", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"plan":  "Family",
	})
	api.SubmitInquiry(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["id"] == nil || body["id"].(float64) == 0 {
		t.Fatalf("expected assigned inquiry id, got %v", body["id"])
	}
}

func TestSubmitInquiryWithoutContact(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/inquiries", map[string]any{"name": "Ada"})
	api.SubmitInquiry(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
