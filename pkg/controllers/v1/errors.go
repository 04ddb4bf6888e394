package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/taya-finance/backend/pkg/ledger"
	"github.com/taya-finance/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"category with ID 3 not found"`
	Kind  string `json:"kind" example:"NotFound" enums:"NotFound,ValidationFailed,Conflict,Internal"`
}

// status returns the HTTP status for an error returned by the ledger.
func status(err error) int {
	switch ledger.KindOf(err) {
	case ledger.NotFound:
		return http.StatusNotFound
	case ledger.ValidationFailed, ledger.Conflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes the error response for err.
//
// Details of internal errors are only logged, the client receives a general message.
func writeError(c *gin.Context, err error) {
	kind := ledger.KindOf(err)
	msg := err.Error()

	if kind == ledger.Internal {
		if !errors.Is(err, models.ErrGeneral) {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		}
		msg = models.ErrGeneral.Error()
	}

	c.JSON(status(err), httpError{
		Error: msg,
		Kind:  kind.String(),
	})
}

// bindError converts a request binding error into a ledger error.
func bindError(err error) error {
	return ledger.Wrap(ledger.ValidationFailed, err)
}
