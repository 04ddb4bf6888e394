// Package uuid wraps github.com/google/uuid so that UUIDs can be bound
// from URI and query parameters by gin.
package uuid

import (
	"errors"
	"fmt"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's BindUnmarshaler.
//
// The empty string is parsed as Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalid, p)
	}

	*u = UUID{parsed}
	return nil
}
