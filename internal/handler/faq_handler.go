package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
)

type faqItemRequest struct {
	GroupLabel string `json:"group"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Sort       *int   `json:"order"`
	PageTag    string `json:"pageTag"`
}

func (r faqItemRequest) toInput(defaultTag string) service.FAQItemInput {
	tag := r.PageTag
	if tag == "" {
		tag = defaultTag
	}
	return service.FAQItemInput{
		GroupLabel: r.GroupLabel,
		Question:   r.Question,
		Answer:     r.Answer,
		Sort:       r.Sort,
		PageTag:    tag,
	}
}

func faqItemPayload(item db.FAQItem) gin.H {
	return gin.H{
		"id":        item.ID,
		"group":     item.GroupLabel,
		"question":  item.Question,
		"answer":    item.Answer,
		"order":     item.Sort,
		"pageTag":   item.PageTag,
		"updatedAt": item.UpdatedAt,
	}
}

// ListFAQ returns all FAQ items for the requested page ordered by group and
// order value.
func (a *API) ListFAQ(c *gin.Context) {
	items, err := a.faqs.List(pageTagOf(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load faq items")
		return
	}

	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, faqItemPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{"items": payload})
}

// CreateFAQ inserts a new FAQ item and returns it with its assigned id.
func (a *API) CreateFAQ(c *gin.Context) {
	var payload faqItemRequest
	if !bindJSON(c, &payload, "invalid faq payload") {
		return
	}

	item, err := a.faqs.Create(payload.toInput(pageTagOf(c)))
	if err != nil {
		if errors.Is(err, service.ErrFAQItemInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create faq item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": faqItemPayload(*item)})
}

// UpdateFAQ rewrites an FAQ item by id.
func (a *API) UpdateFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid faq item id")
		return
	}

	var payload faqItemRequest
	if !bindJSON(c, &payload, "invalid faq payload") {
		return
	}

	item, err := a.faqs.Update(id, payload.toInput(pageTagOf(c)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFAQItemNotFound):
			respondError(c, http.StatusNotFound, "faq item not found")
		case errors.Is(err, service.ErrFAQItemInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update faq item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": faqItemPayload(*item)})
}

// DeleteFAQ removes an FAQ item by id.
func (a *API) DeleteFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid faq item id")
		return
	}

	if err := a.faqs.Delete(id); err != nil {
		if errors.Is(err, service.ErrFAQItemNotFound) {
			respondError(c, http.StatusNotFound, "faq item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete faq item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "faq item deleted"})
}
