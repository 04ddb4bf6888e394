package httperrors

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// New writes an HTTPError with the status to the response.
//
// msgAndArgs is either a single message or a format string followed by its arguments.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Formatting follows https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}
