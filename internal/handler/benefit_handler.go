package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
)

type benefitRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
	Sort     *int   `json:"order"`
	PageTag  string `json:"pageTag"`
}

func (r benefitRequest) toInput(defaultTag string) service.BenefitInput {
	tag := r.PageTag
	if tag == "" {
		tag = defaultTag
	}
	return service.BenefitInput{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Icon:     r.Icon,
		Sort:     r.Sort,
		PageTag:  tag,
	}
}

func benefitPayload(item db.Benefit) gin.H {
	return gin.H{
		"id":        item.ID,
		"title":     item.Title,
		"subtitle":  item.Subtitle,
		"icon":      item.Icon,
		"order":     item.Sort,
		"pageTag":   item.PageTag,
		"updatedAt": item.UpdatedAt,
	}
}

// ListBenefits returns all benefit cards for the requested page in display order.
func (a *API) ListBenefits(c *gin.Context) {
	items, err := a.benefits.List(pageTagOf(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load benefits")
		return
	}

	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, benefitPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{"items": payload})
}

// CreateBenefit inserts a new benefit card and returns it with its assigned id.
func (a *API) CreateBenefit(c *gin.Context) {
	var payload benefitRequest
	if !bindJSON(c, &payload, "invalid benefit payload") {
		return
	}

	item, err := a.benefits.Create(payload.toInput(pageTagOf(c)))
	if err != nil {
		if errors.Is(err, service.ErrBenefitInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create benefit")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": benefitPayload(*item)})
}

// UpdateBenefit rewrites a benefit card by id.
func (a *API) UpdateBenefit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid benefit id")
		return
	}

	var payload benefitRequest
	if !bindJSON(c, &payload, "invalid benefit payload") {
		return
	}

	item, err := a.benefits.Update(id, payload.toInput(pageTagOf(c)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBenefitNotFound):
			respondError(c, http.StatusNotFound, "benefit not found")
		case errors.Is(err, service.ErrBenefitInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update benefit")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": benefitPayload(*item)})
}

// DeleteBenefit removes a benefit card by id.
func (a *API) DeleteBenefit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid benefit id")
		return
	}

	if err := a.benefits.Delete(id); err != nil {
		if errors.Is(err, service.ErrBenefitNotFound) {
			respondError(c, http.StatusNotFound, "benefit not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete benefit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "benefit deleted"})
}
