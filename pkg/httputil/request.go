package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data, which must be a pointer.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		// Type errors and invalid dates tell the client what is wrong, pass them on
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s has the wrong type", ErrInvalidBody, jsonUnmarshalTypeError.Field)
		}

		if errors.Is(err, ErrInvalidDate) {
			return err
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
