// utils/response.go
package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mantleflow-backend/apperrors"
)

// RespondWithError renders a taxonomy error as {error, details?} with the
// status code its kind maps to. Errors outside the taxonomy become a bare 500.
func RespondWithError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if appErr.Details != "" {
			body["details"] = appErr.Details
		}
		c.JSON(status, body)
		return
	}

	c.JSON(status, gin.H{"error": "Internal server error"})
}
