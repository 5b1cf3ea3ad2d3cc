package controllers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"scoopshop-backend/billing"
	"scoopshop-backend/config"
	"scoopshop-backend/models"
	"scoopshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// GenerateBillInput defines the expected JSON structure for generating a bill
type GenerateBillInput struct {
	Items       []billing.LineItem   `json:"items" binding:"required"`
	TotalAmount float64              `json:"totalAmount" binding:"min=0"`
	Customer    billing.CustomerInfo `json:"customer" binding:"required"`
}

// GenerateBill composes the bill PDF for the submitted cart and streams it
// as a download. Nothing is persisted; a failed generation can simply be
// retried.
func GenerateBill(c *gin.Context) {
	var input GenerateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if len(input.Items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}
	if !utils.ValidateCustomerName(input.Customer.Name) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Name can only contain letters, spaces, hyphens, apostrophes, and periods")
		return
	}
	if !utils.ValidatePhone(input.Customer.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a valid 10-digit phone number")
		return
	}

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	biller := billing.BillerInfo{
		Name:  user.DisplayName(),
		Email: user.Email,
	}

	invoice, err := billing.Compose(input.Items, input.TotalAmount, input.Customer, biller, time.Now())
	if err != nil {
		if errors.Is(err, billing.ErrTotalMismatch) {
			utils.RespondWithError(c, http.StatusBadRequest, "Cart total does not match line items")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate bill")
		}
		return
	}

	// Render fully into memory so a failed generation sends nothing.
	var buf bytes.Buffer
	if err := invoice.RenderPDF(&buf); err != nil {
		log.Printf("PDF generation error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError,
			"Failed to generate PDF. Please try again.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+invoice.FileName()+`"`)
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
