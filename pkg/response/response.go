package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

// The mobile client expects flat payloads: errors as {"error": "..."} and
// informational responses as {"message": "..."}.

// JSON sends the payload as-is with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message responds with a {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Error normalises the error and sends {"error": ...} with its status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
