package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
)

type sectionRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ImageURL        string `json:"imageUrl"`
	Layout          string `json:"layout"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Sort            *int   `json:"order"`
	Visible         *bool  `json:"visible"`
}

type sectionReorderRequest struct {
	IDs []uint `json:"ids"`
}

func (r sectionRequest) toInput() service.SectionInput {
	return service.SectionInput{
		Title:           r.Title,
		Content:         r.Content,
		ImageURL:        r.ImageURL,
		Layout:          r.Layout,
		BackgroundColor: r.BackgroundColor,
		TextColor:       r.TextColor,
		Sort:            r.Sort,
		Visible:         r.Visible,
	}
}

func sectionPayload(item db.CustomSection) gin.H {
	return gin.H{
		"id":              item.ID,
		"title":           item.Title,
		"content":         item.Content,
		"imageUrl":        item.ImageURL,
		"layout":          item.Layout,
		"backgroundColor": item.BackgroundColor,
		"textColor":       item.TextColor,
		"order":           item.Sort,
		"visible":         item.Visible,
		"updatedAt":       item.UpdatedAt,
	}
}

// ListSections returns all custom sections, hidden ones included, in display
// order. The admin editor needs the hidden ones; the public page filters
// server-side.
func (a *API) ListSections(c *gin.Context) {
	items, err := a.sections.List(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load sections")
		return
	}

	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, sectionPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{"items": payload})
}

// CreateSection inserts a new custom section and returns it with its assigned id.
func (a *API) CreateSection(c *gin.Context) {
	var payload sectionRequest
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	item, err := a.sections.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSectionInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create section")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": sectionPayload(*item)})
}

// UpdateSection rewrites a custom section by id.
func (a *API) UpdateSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	var payload sectionRequest
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	item, err := a.sections.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionItemNotFound):
			respondError(c, http.StatusNotFound, "section not found")
		case errors.Is(err, service.ErrSectionInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update section")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": sectionPayload(*item)})
}

// DeleteSection removes a custom section by id.
func (a *API) DeleteSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := a.sections.Delete(id); err != nil {
		if errors.Is(err, service.ErrSectionItemNotFound) {
			respondError(c, http.StatusNotFound, "section not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete section")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "section deleted"})
}

// ReorderSections rewrites the display order following the submitted id list.
// The drag-and-drop editor sends the full list after every drop.
func (a *API) ReorderSections(c *gin.Context) {
	var payload sectionReorderRequest
	if !bindJSON(c, &payload, "invalid reorder payload") {
		return
	}

	if err := a.sections.Reorder(payload.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reorder sections")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sections reordered"})
}
