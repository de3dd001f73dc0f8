package admin

import (
	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
)

// Placeholders shown when a user id has no resolvable profile.
const (
	UnknownUser      = "Unknown User"
	UnknownRequester = "Unknown"
)

type AttendanceEntry struct {
	attendance.Attendance
	Name string `json:"name"`
}

type LeaveEntry struct {
	leave.LeaveRequest
	Name string `json:"name"`
}

type Dashboard struct {
	Date          string            `json:"date"`
	Attendance    []AttendanceEntry `json:"attendance"`
	LeaveRequests []LeaveEntry      `json:"leave_requests"`
}

// NameDirectory maps user ids to display names for a single view load.
type NameDirectory map[string]string

// Resolve returns the name for id, or placeholder when the id is unknown
// or its name is blank.
func (d NameDirectory) Resolve(id, placeholder string) string {
	if name, ok := d[id]; ok && name != "" {
		return name
	}
	return placeholder
}
