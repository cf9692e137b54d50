package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"style-shop/models"
)

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: message, Data: data})
}

// respondError maps a tagged service error onto its HTTP status. Anything
// outside the closed set is reported as a generic internal failure without
// leaking storage detail.
func respondError(c *gin.Context, err error) {
	if appErr, ok := models.AsAppError(err); ok {
		c.JSON(appErr.Status, models.ErrorResponse{Success: false, Message: appErr.Message})
		return
	}

	log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Internal server error",
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: message})
}
