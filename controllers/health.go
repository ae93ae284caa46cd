// controllers/health.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root confirms the backend is up
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MantleFlow Backend is running!"})
}

// Health reports service liveness with a timestamp
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
