package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateOnly is the layout for dates without a time. They are interpreted
// as midnight UTC.
const dateOnly = "2006-01-02"

// Date is a point in time that can be bound from query parameters
// and JSON in either RFC3339 or YYYY-MM-DD format.
type Date struct {
	time.Time
}

// ParseDate parses s in RFC3339 or YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(dateOnly, s, time.UTC)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w, got '%s'", ErrInvalidDate, s)
}

// UnmarshalParam implements gin's BindUnmarshaler. An empty
// parameter leaves the zero value.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}

	t, err := ParseDate(param)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w, got %s", ErrInvalidDate, data)
	}

	return d.UnmarshalParam(s)
}

// Ptr returns a pointer to the time, or nil if d is nil or the zero value.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}

	t := d.Time
	return &t
}
