package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func createFAQ(t *testing.T, api *API, target string, payload map[string]any) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, target, payload)
	api.CreateFAQ(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	item, ok := decodeBody(t, w)["item"].(map[string]any)
	if !ok {
		t.Fatalf("expected item in response, got %s", w.Body.String())
	}
	return item
}

func listFAQ(t *testing.T, api *API, target string) []any {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	api.ListFAQ(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	items, ok := decodeBody(t, w)["items"].([]any)
	if !ok {
		t.Fatalf("expected items array, got %s", w.Body.String())
	}
	return items
}

func TestCreateFAQAssignsID(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	item := createFAQ(t, api, "/api/faq", map[string]any{
		"group":    "Billing",
		"question": "How do I pay?",
		"answer":   "Bank transfer or card.",
	})

	if item["id"] == nil || item["id"].(float64) == 0 {
		t.Fatalf("expected assigned id, got %v", item["id"])
	}
	if item["pageTag"] != "default" {
		t.Fatalf("expected default page tag, got %v", item["pageTag"])
	}
}

func TestListFAQOrderedByGroupAndSort(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	createFAQ(t, api, "/api/faq", map[string]any{"group": "Setup", "question": "Q3", "answer": "A", "order": 0})
	createFAQ(t, api, "/api/faq", map[string]any{"group": "Billing", "question": "Q2", "answer": "A", "order": 1})
	createFAQ(t, api, "/api/faq", map[string]any{"group": "Billing", "question": "Q1", "answer": "A", "order": 0})

	items := listFAQ(t, api, "/api/faq")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	questions := make([]string, 0, len(items))
	for _, raw := range items {
		questions = append(questions, raw.(map[string]any)["question"].(string))
	}
	if questions[0] != "Q1" || questions[1] != "Q2" || questions[2] != "Q3" {
		t.Fatalf("unexpected order: %v", questions)
	}
}

func TestFAQFlexpayPathScopesItems(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	createFAQ(t, api, "/api/faq", map[string]any{"group": "General", "question": "Default Q", "answer": "A"})
	item := createFAQ(t, api, "/api/flexpay/faq", map[string]any{"group": "FlexPay", "question": "Flexpay Q", "answer": "A"})

	if item["pageTag"] != "flexpay" {
		t.Fatalf("expected flexpay page tag from path, got %v", item["pageTag"])
	}

	flexpay := listFAQ(t, api, "/api/flexpay/faq")
	if len(flexpay) != 1 || flexpay[0].(map[string]any)["question"] != "Flexpay Q" {
		t.Fatalf("expected only the flexpay item, got %#v", flexpay)
	}

	defaults := listFAQ(t, api, "/api/faq")
	if len(defaults) != 1 || defaults[0].(map[string]any)["question"] != "Default Q" {
		t.Fatalf("expected only the default item, got %#v", defaults)
	}
}

func TestUpdateFAQ(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	item := createFAQ(t, api, "/api/faq", map[string]any{"group": "Billing", "question": "Old", "answer": "A"})
	id := uint(item["id"].(float64))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/faq/%d", id), map[string]any{
		"group":    "Billing",
		"question": "New",
		"answer":   "B",
		"order":    3,
	})
	c.Params = gin.Params{gin.Param{Key: "id", Value: fmt.Sprint(id)}}
	api.UpdateFAQ(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)["item"].(map[string]any)
	if updated["question"] != "New" || updated["order"].(float64) != 3 {
		t.Fatalf("update did not persist: %#v", updated)
	}
}

func TestDeleteFAQMissingItem(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/faq/999", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "999"}}
	api.DeleteFAQ(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCreateFAQValidation(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/faq", map[string]any{"group": "Billing"})
	api.CreateFAQ(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
