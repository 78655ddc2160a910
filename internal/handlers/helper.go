package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintParam extracts a numeric path parameter. A non-numeric value means
// no such resource can exist, so it renders 404 and reports false.
func (h *BaseHandler) parseUintParam(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.RespondWithError(c, http.StatusNotFound, err)
		return 0, false
	}
	return uint(id), true
}

// parsePageParam reads the 1-based page query parameter, defaulting to the
// first page on absence or garbage input.
func parsePageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
