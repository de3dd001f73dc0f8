package cli

import (
	"strconv"

	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/pkg/output"
	"github.com/spf13/cobra"
)

func newLeaveCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leave",
		Aliases: []string{"cuti"},
		Short:   "Submit and list leave requests",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return s.app.Open(navigation.ScreenLeaveRequest)
		},
	}

	var req leave.SubmitRequest
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit a leave request for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := s.app.Leave.Submit(cmd.Context(), req)
			if err != nil {
				return s.app.Handle(err)
			}
			s.printer.Success("Leave request %s submitted %s", created.ID, s.printer.StatusBadge(string(created.Status)))
			return nil
		},
	}
	submit.Flags().StringVar(&req.StartDate, "start", "", "first day of leave (YYYY-MM-DD)")
	submit.Flags().StringVar(&req.EndDate, "end", "", "last day of leave (YYYY-MM-DD)")
	submit.Flags().StringVar(&req.Reason, "reason", "", "reason for the leave")

	list := &cobra.Command{
		Use:   "list",
		Short: "List your leave requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := s.app.Leave.ListMine(cmd.Context())
			if err != nil {
				return s.app.Handle(err)
			}
			if len(requests) == 0 {
				s.printer.Info("No leave requests.")
				return nil
			}
			return renderLeave(s.printer, requests, nil)
		},
	}

	cmd.AddCommand(submit, list)
	return cmd
}

// renderLeave prints requests, with a requester column when names is set.
func renderLeave(p *output.Printer, requests []leave.LeaveRequest, names []string) error {
	headers := []string{"ID", "Start", "End", "Reason", "Status"}
	if names != nil {
		headers = append([]string{"Name"}, headers...)
	}

	table := output.NewTable(p.Out(), headers)
	for i, r := range requests {
		row := []string{r.ID, r.StartDate, r.EndDate, r.Reason, p.StatusBadge(string(r.Status))}
		if names != nil {
			row = append([]string{names[i]}, row...)
		}
		table.AddRow(row)
	}
	if err := table.Render(); err != nil {
		return err
	}
	p.Print("%s", p.Dim(strconv.Itoa(table.Len())+" request(s)"))
	return nil
}
