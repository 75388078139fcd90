package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
)

// parsePagination reads skip/limit query params, clamping negatives and
// capping limit at the repository maximum.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.MaxPageSize)))

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	return offset, limit
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
