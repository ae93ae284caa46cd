// controllers/invoice.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/services"
	"mantleflow-backend/utils"
)

// CreateInvoiceInput defines the expected JSON structure for creating an
// invoice. The due date stays a string here; the service parses it.
type CreateInvoiceInput struct {
	BusinessID uint   `json:"businessId" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	DueDate    string `json:"dueDate" binding:"required"`
	TokenURI   string `json:"tokenURI"`
}

type InvoiceController struct {
	service *services.InvoiceService
}

func NewInvoiceController(service *services.InvoiceService) *InvoiceController {
	return &InvoiceController{service: service}
}

// CreateInvoice creates a new unpaid invoice for a business
func (ctrl *InvoiceController) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, apperrors.Validation("businessId, amount and dueDate are required"))
		return
	}

	invoice, err := ctrl.service.Create(input.BusinessID, input.Amount, input.DueDate, input.TokenURI)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}
