// controllers/business.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/services"
	"mantleflow-backend/utils"
)

// RegisterBusinessInput defines the expected JSON structure for registering
// a business. Presence is validated by the service so that a missing field
// and an empty field produce the same error.
type RegisterBusinessInput struct {
	Name         string `json:"name"`
	OwnerAddress string `json:"ownerAddress"`
}

type BusinessController struct {
	service *services.BusinessService
}

func NewBusinessController(service *services.BusinessService) *BusinessController {
	return &BusinessController{service: service}
}

// RegisterBusiness creates a business for a wallet address
func (ctrl *BusinessController) RegisterBusiness(c *gin.Context) {
	var input RegisterBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, apperrors.Validation("Name and ownerAddress are required"))
		return
	}

	log.Printf("Registering business: name=%q ownerAddress=%q", input.Name, input.OwnerAddress)

	business, err := ctrl.service.Register(input.Name, input.OwnerAddress)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

// GetBusinesses returns every business with its invoices
func (ctrl *BusinessController) GetBusinesses(c *gin.Context) {
	businesses, err := ctrl.service.GetAll()
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// GetBusinessByAddress returns the business registered for a wallet address
func (ctrl *BusinessController) GetBusinessByAddress(c *gin.Context) {
	address := c.Param("address")

	business, err := ctrl.service.GetByAddress(address)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}
