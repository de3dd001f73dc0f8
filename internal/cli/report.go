package cli

import (
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	"github.com/cmlabs-hris/workforce/internal/pkg/output"
	"github.com/spf13/cobra"
)

func newReportCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"laporan"},
		Short:   "Create and read work reports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return s.app.Open(navigation.ScreenReport)
		},
	}

	var req report.CreateRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "File a report dated now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Open(navigation.ScreenAddReport); err != nil {
				return err
			}
			created, err := s.app.Reports.Create(cmd.Context(), req)
			if err != nil {
				return s.app.Handle(err)
			}
			s.printer.Success("Report %s created", created.ID)
			return nil
		},
	}
	create.Flags().StringVar(&req.Title, "title", "", "report title")
	create.Flags().StringVar(&req.Description, "description", "", "what was done")
	create.Flags().StringVar(&req.Status, "status", "", "progress status, e.g. proses or selesai")

	list := &cobra.Command{
		Use:   "list",
		Short: "List your reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := s.app.Reports.List(cmd.Context())
			if err != nil {
				return s.app.Handle(err)
			}
			if len(reports) == 0 {
				s.printer.Info("No reports.")
				return nil
			}

			table := output.NewTable(s.printer.Out(), []string{"ID", "Date", "Title", "Status"})
			for _, r := range reports {
				table.AddRow([]string{r.ID, r.Date.Format(clock.DateLayout), r.Title, s.printer.StatusBadge(r.Status)})
			}
			return table.Render()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Open(navigation.ScreenDetailReport); err != nil {
				return err
			}
			r, err := s.app.Reports.GetByID(cmd.Context(), args[0])
			if err != nil {
				return s.app.Handle(err)
			}
			s.printer.Header(r.Title)
			s.printer.Field("Date", r.Date.Format(clock.DateLayout))
			s.printer.Field("Status", s.printer.StatusBadge(r.Status))
			s.printer.Print("")
			s.printer.Print("%s", r.Description)
			return nil
		},
	}

	cmd.AddCommand(create, list, show)
	return cmd
}
