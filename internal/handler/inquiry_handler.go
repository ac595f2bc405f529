package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/service"
)

type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Plan    string `json:"plan"`
}

// SubmitInquiry stores a quote request from the public site and notifies the
// sales inbox. Mail failure is invisible to the visitor.
func (a *API) SubmitInquiry(c *gin.Context) {
	var payload inquiryRequest
	if !bindJSON(c, &payload, "invalid inquiry payload") {
		return
	}

	inquiry, err := a.inquiries.Submit(service.InquiryInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
		Plan:    payload.Plan,
	})
	if err != nil {
		if errors.Is(err, service.ErrInquiryInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to submit inquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "inquiry received",
		"id":      inquiry.ID,
	})
}
