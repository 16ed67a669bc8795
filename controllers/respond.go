package controllers

import (
	"net/http"
	"strings"

	"moviecatalogapi/services/dto"
	"moviecatalogapi/utils"

	"github.com/gin-gonic/gin"
)

// commandResponse translates a command result into an HTTP response. Failed
// results map to a status derived from the message: missing entities to 404,
// uniqueness and relational-integrity violations to 409, everything else to 400.
func commandResponse(c *gin.Context, result *dto.CommandResult, successStatus int) {
	if result.IsSuccessful {
		utils.JSONResponse(c, successStatus, result)
		return
	}

	status := http.StatusBadRequest
	switch {
	case strings.Contains(result.Message, "not found"):
		status = http.StatusNotFound
	case strings.Contains(result.Message, "already exists"),
		strings.Contains(result.Message, "relational"):
		status = http.StatusConflict
	}
	utils.JSONResponse(c, status, result)
}

// notFoundResponse sends a 404 with the given message.
func notFoundResponse(c *gin.Context, message string) {
	utils.JSONResponse(c, http.StatusNotFound, gin.H{
		"error": message,
	})
}
