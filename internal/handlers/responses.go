package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorMessageResponse is the error envelope for every failed request.
type ErrorMessageResponse struct {
	Message string `json:"message"`
}

func notFound(c *gin.Context, entity string, id uint) {
	c.JSON(http.StatusNotFound, ErrorMessageResponse{
		Message: fmt.Sprintf("Could not find %s with id %d", entity, id),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorMessageResponse{Message: message})
}

// storeError logs the underlying store failure and reports a generic 500;
// store internals never leak to clients.
func storeError(c *gin.Context, op string, err error) {
	slog.Error("Store operation failed", "op", op, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorMessageResponse{Message: "Database error"})
}

// idParam parses the {id} path parameter. A non-numeric id is a malformed
// request, not a missing record.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
