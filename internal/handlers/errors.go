package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
)

// writeBusinessError maps a use-case error code onto its HTTP status.
// Returns false when err carries no business code, leaving the caller
// to treat it as a storage failure.
func writeBusinessError(c *gin.Context, err error) bool {
	code := httperr.BusinessCode(err)
	switch code {
	case "customer_not_found":
		httperr.NotFound(c, code, "Customer not found.")
	case "service_provider_not_found":
		httperr.NotFound(c, code, "Service provider not found.")
	case "service_not_found":
		httperr.NotFound(c, code, "Service not found.")
	case "task_not_found":
		httperr.NotFound(c, code, "Task not found.")
	case "negative_price":
		httperr.Unprocessable(c, code, "Total price must not be negative.")
	case "invalid_window":
		httperr.Unprocessable(c, code, "Window days must be zero or positive.")
	case "service_has_tasks":
		httperr.Conflict(c, code, "Service still has tasks attached.")
	default:
		return false
	}
	return true
}
