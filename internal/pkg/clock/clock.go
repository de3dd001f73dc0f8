package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var ErrTimezoneRequired = errors.New("attendance timezone is required")

type Clock interface {
	Now() time.Time
}

// Wall reads the system clock in a fixed location.
type Wall struct {
	loc *time.Location
}

func NewWall(loc *time.Location) Wall {
	return Wall{loc: loc}
}

func (w Wall) Now() time.Time {
	return time.Now().In(w.loc)
}

func (w Wall) Location() *time.Location {
	return w.loc
}

// LoadLocation resolves an IANA zone name. "Local" is accepted and means the
// host zone; an empty name is an error.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrTimezoneRequired
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

// Today formats the calendar date of now as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// TimeOfDay formats now as a 24-hour HH:MM:SS wall clock without offset.
func TimeOfDay(c Clock) string {
	return c.Now().Format(TimeLayout)
}
