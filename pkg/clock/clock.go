// Package clock supplies "now" and "today" in the console's fixed business zone.
package clock

import (
	"fmt"
	"time"
)

type Clock interface {
	Now() time.Time
	// Today returns the current date as YYYY-MM-DD in the clock's zone.
	Today() string
}

type zoned struct {
	loc *time.Location
	now func() time.Time
}

// NewFixedOffset returns a wall clock that always reports dates in UTC+offsetHours,
// whatever the host timezone is.
func NewFixedOffset(offsetHours int) Clock {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	if offsetHours == 9 {
		name = "KST"
	}
	return &zoned{loc: time.FixedZone(name, offsetHours*3600), now: time.Now}
}

func (c *zoned) Now() time.Time { return c.now().In(c.loc) }

func (c *zoned) Today() string { return c.Now().Format(time.DateOnly) }

// Static is a clock frozen at one instant. Tests use it.
type Static struct {
	T time.Time
}

func (s Static) Now() time.Time { return s.T }

func (s Static) Today() string { return s.T.Format(time.DateOnly) }

// OnDate returns a Static clock at noon of the given YYYY-MM-DD in UTC+9.
func OnDate(date string) Static {
	loc := time.FixedZone("KST", 9*3600)
	t, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		panic(err)
	}
	return Static{T: t.Add(12 * time.Hour)}
}
