// Package cli is the terminal front end of the workforce client.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cmlabs-hris/workforce/internal/app"
	"github.com/cmlabs-hris/workforce/internal/config"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/gateway/remote"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	"github.com/cmlabs-hris/workforce/internal/pkg/output"
	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
	"github.com/spf13/cobra"
)

var version = "dev"

// Factory builds the App a command runs against.
type Factory func(logger *slog.Logger, nav navigation.Navigator) (*app.App, error)

// session is the per-invocation state shared by every command.
type session struct {
	factory Factory

	verbose bool
	noColor bool

	app     *app.App
	nav     *screenNavigator
	printer *output.Printer
	logger  *slog.Logger
}

func SetVersion(v string) {
	version = v
}

// Execute runs the workforce CLI against the configured API.
func Execute() error {
	err := NewRootCommand(RemoteFactory).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", Describe(err))
	}
	return err
}

func NewRootCommand(factory Factory) *cobra.Command {
	s := &session{factory: factory}

	root := &cobra.Command{
		Use:   "workforce",
		Short: "Attendance, leave and reports from the terminal",
		Long: `workforce signs you in once and keeps the session between commands.

Example usage:
  workforce login --email budi@example.com
  workforce attendance check-in
  workforce leave submit --start 2024-05-02 --end 2024-05-03 --reason "family"
  workforce report list
  workforce admin dashboard`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.start(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newLoginCommand(s),
		newRegisterCommand(s),
		newLogoutCommand(s),
		newWhoamiCommand(s),
		newAttendanceCommand(s),
		newLeaveCommand(s),
		newReportCommand(s),
		newAdminCommand(s),
	)
	return root
}

func (s *session) start(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if s.verbose {
		level = slog.LevelDebug
	}
	s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	s.printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.UseColors(s.noColor))
	s.nav = &screenNavigator{logger: s.logger}

	a, err := s.factory(s.logger, s.nav)
	if err != nil {
		return err
	}
	s.app = a

	if _, err := a.Start(cmd.Context()); err != nil {
		s.printer.Warning("could not restore session: %s", Describe(err))
	}
	return nil
}

// RemoteFactory builds the App on the HTTP gateway using the environment
// configuration.
func RemoteFactory(logger *slog.Logger, nav navigation.Navigator) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateClient(); err != nil {
		return nil, err
	}

	loc, err := clock.LoadLocation(cfg.Client.Timezone)
	if err != nil {
		return nil, err
	}

	client := remote.NewClient(cfg.Client.APIURL, cfg.Client.HTTPTimeout, remote.NewFileTokenStore(cfg.Client.SessionFile), logger)
	return app.New(app.Deps{
		Provider:              client.Provider(),
		Profiles:              client.Profiles(),
		Attendance:            client.Attendance(),
		LeaveRequests:         client.LeaveRequests(),
		Reports:               client.Reports(),
		Clock:                 clock.NewWall(loc),
		EnforceLeaveDateOrder: cfg.Policy.EnforceLeaveDateOrder,
		Logger:                logger,
	}, nav), nil
}

// Describe renders err for the terminal, listing field errors one per line.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		lines := make([]string, 0, len(verrs)+1)
		lines = append(lines, "invalid input")
		for _, v := range verrs {
			lines = append(lines, fmt.Sprintf("  %s: %s", v.Field, v.Message))
		}
		return strings.Join(lines, "\n")
	}

	var regErr *identity.RegistrationError
	if errors.As(err, &regErr) && regErr.Stage == identity.StageProfile {
		return fmt.Sprintf("%s (the account was created without a profile; contact an administrator)", regErr.Error())
	}
	return err.Error()
}

// readSecret returns value, or the first line of in when value is empty.
func readSecret(in io.Reader, value string) string {
	if value != "" {
		return value
	}
	var line string
	_, _ = fmt.Fscanln(in, &line)
	return strings.TrimSpace(line)
}
