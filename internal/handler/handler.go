package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/validator"
)

// bindJSON binds and validates the request body. On failure it writes the
// error response (400 for malformed JSON, 422 with field details for
// validation failures) and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	fields := validator.Bind(c, dst)
	if fields == nil {
		return true
	}
	if _, malformed := fields["detail"]; malformed && len(fields) == 1 {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	response.FailWithFields(c, http.StatusUnprocessableEntity, "Validation failed", fields)
	return false
}

// boolQuery parses an optional boolean query parameter. present reports
// whether the parameter was supplied; a malformed value writes a 400 and
// returns ok=false.
func boolQuery(c *gin.Context, name string) (value, present, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return false, false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid '"+name+"' parameter")
		return false, true, false
	}
	return v, true, true
}
