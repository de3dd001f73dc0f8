package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Has reports whether a failure was recorded for field.
func (v ValidationErrors) Has(field string) bool {
	for _, err := range v {
		if err.Field == field {
			return true
		}
	}
	return false
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword accepts at least six letters or digits, with one of each.
func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// IsValidClock checks a 24-hour HH:MM:SS time of day.
func IsValidClock(clock string) bool {
	_, err := time.Parse(ClockLayout, clock)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

type Date time.Time

// ParseDate parses a date string in "YYYY-MM-DD" format and returns a Date type.
func ParseDate(dateStr string) (Date, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// Before reports whether the date d is before u.
func (d Date) Before(u Date) bool {
	return time.Time(d).Before(time.Time(u))
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
