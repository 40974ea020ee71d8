package response

import "github.com/gin-gonic/gin"

// Error is the error body for every failed request: {"detail": "<message>"}.
// Validation failures additionally carry a field → message map.
type Error struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Fail sends an error response with the given status and message.
func Fail(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, Error{Detail: detail})
}

// FailWithFields sends a validation error with field-level details.
func FailWithFields(c *gin.Context, statusCode int, detail string, fields map[string]string) {
	c.JSON(statusCode, Error{Detail: detail, Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, Error{Detail: detail})
}
