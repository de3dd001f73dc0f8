package record

import "errors"

var (
	ErrForbidden     = errors.New("you do not have access to these records")
	ErrProfileExists = errors.New("a profile already exists for this account")
)
