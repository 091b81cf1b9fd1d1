package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gestiontickets/internal/shared/constants"
	"gestiontickets/internal/shared/errors"
)

// ParseIDParam parses the :id path parameter as an unsigned integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid id parameter", raw)
	}
	return uint(id), nil
}

// ParsePageQuery parses the "page" query parameter. Missing, unparsable,
// zero or negative values all fall back to page 1.
func ParsePageQuery(c *gin.Context) int {
	raw := c.Query("page")
	if raw == "" {
		return constants.DefaultPage
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return constants.DefaultPage
	}
	return page
}
