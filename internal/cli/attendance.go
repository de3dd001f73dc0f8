package cli

import (
	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/pkg/output"
	"github.com/spf13/cobra"
)

func newAttendanceCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"absen"},
		Short:   "Check in, check out and see today's record",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return s.app.Open(navigation.ScreenAbsence)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "today",
			Short: "Show today's attendance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rec, err := s.app.Attendance.FetchToday(cmd.Context())
				if err != nil {
					return s.app.Handle(err)
				}
				if rec == nil {
					s.printer.Info("Not checked in today.")
					return nil
				}
				printAttendance(s.printer, *rec)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check-in",
			Short: "Record today's check-in time",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rec, err := s.app.Attendance.CheckIn(cmd.Context())
				if err != nil {
					return s.app.Handle(err)
				}
				s.printer.Success("Checked in at %s", deref(rec.CheckIn))
				return nil
			},
		},
		&cobra.Command{
			Use:   "check-out",
			Short: "Record today's check-out time",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rec, err := s.app.Attendance.CheckOut(cmd.Context())
				if err != nil {
					return s.app.Handle(err)
				}
				s.printer.Success("Checked out at %s", deref(rec.CheckOut))
				return nil
			},
		},
	)
	return cmd
}

func printAttendance(p *output.Printer, rec attendance.Attendance) {
	p.Field("Date", rec.Date)
	p.Field("Check in", deref(rec.CheckIn))
	p.Field("Check out", deref(rec.CheckOut))
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
