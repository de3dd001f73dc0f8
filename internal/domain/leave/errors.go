package leave

import "errors"

var (
	ErrInvalidDate          = errors.New("invalid leave date")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
)
