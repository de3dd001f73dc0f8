package cli

import (
	"github.com/cmlabs-hris/workforce/internal/domain/admin"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/pkg/output"
	"github.com/spf13/cobra"
)

func newAdminCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Review attendance and leave for everyone (administrators)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "dashboard",
			Short: "Today's attendance and all leave requests",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dashboard, err := s.app.AdminDashboard(cmd.Context())
				if err != nil {
					return err
				}
				s.printer.Header("Attendance " + dashboard.Date)
				if err := renderAttendance(s.printer, dashboard.Attendance); err != nil {
					return err
				}
				s.printer.Header("Leave requests")
				return renderLeaveEntries(s.printer, dashboard.LeaveRequests)
			},
		},
		&cobra.Command{
			Use:   "attendance",
			Short: "Everyone's attendance today",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := s.app.TodayAttendance(cmd.Context())
				if err != nil {
					return err
				}
				return renderAttendance(s.printer, entries)
			},
		},
		&cobra.Command{
			Use:   "leave",
			Short: "Every leave request",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := s.app.AllLeaveRequests(cmd.Context())
				if err != nil {
					return err
				}
				return renderLeaveEntries(s.printer, entries)
			},
		},
	)
	return cmd
}

func renderAttendance(p *output.Printer, entries []admin.AttendanceEntry) error {
	if len(entries) == 0 {
		p.Info("Nobody has checked in yet.")
		return nil
	}
	table := output.NewTable(p.Out(), []string{"Name", "Check in", "Check out"})
	for _, e := range entries {
		table.AddRow([]string{e.Name, deref(e.CheckIn), deref(e.CheckOut)})
	}
	return table.Render()
}

func renderLeaveEntries(p *output.Printer, entries []admin.LeaveEntry) error {
	if len(entries) == 0 {
		p.Info("No leave requests.")
		return nil
	}
	requests := make([]leave.LeaveRequest, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		requests[i] = e.LeaveRequest
		names[i] = e.Name
	}
	return renderLeave(p, requests, names)
}
