package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the API status.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Personal Finance Ledger API v1"})
}
