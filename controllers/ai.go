// controllers/ai.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/services"
	"mantleflow-backend/utils"
)

// PredictInput holds the historical cash-flow series. A pointer slice
// distinguishes a missing field from an empty array; a non-array value fails
// binding.
type PredictInput struct {
	HistoricalData *[]float64 `json:"historical_data"`
}

type AIController struct {
	service *services.PredictionService
}

func NewAIController(service *services.PredictionService) *AIController {
	return &AIController{service: service}
}

// PredictCashFlow proxies the historical series to the AI server. Input
// shape is checked here, before any outbound call.
func (ctrl *AIController) PredictCashFlow(c *gin.Context) {
	var input PredictInput
	if err := c.ShouldBindJSON(&input); err != nil || input.HistoricalData == nil {
		utils.RespondWithError(c, apperrors.Validation("historical_data is required and must be an array"))
		return
	}

	log.Printf("AI prediction request: %v", *input.HistoricalData)

	result, err := ctrl.service.Predict(c.Request.Context(), *input.HistoricalData)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
