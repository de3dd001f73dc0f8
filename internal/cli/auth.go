package cli

import (
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/spf13/cobra"
)

func newLoginCommand(s *session) *cobra.Command {
	var req identity.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Long: `Sign in with email and password. When --password is omitted it is read
from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Password = readSecret(cmd.InOrStdin(), req.Password)
			who, err := s.app.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			s.printer.Success("Signed in as %s (%s)", who.DisplayName, who.Role)
			s.printer.Field("Home", string(s.nav.current))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCommand(s *session) *cobra.Command {
	var req identity.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an employee account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Password = readSecret(cmd.InOrStdin(), req.Password)
			if err := s.app.Register(cmd.Context(), req); err != nil {
				return err
			}
			s.printer.Success("Account created for %s", req.Email)
			s.printer.Info("Run `workforce login --email %s` to sign in.", req.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password: at least 6 letters and digits")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLogoutCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Logout(cmd.Context()); err != nil {
				return err
			}
			s.printer.Success("Signed out")
			return nil
		},
	}
}

func newWhoamiCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			who, ok := s.app.Session.Current()
			if !ok {
				return identity.ErrNotAuthenticated
			}
			s.printer.Field("ID", who.ID)
			s.printer.Field("Name", who.DisplayName)
			s.printer.Field("Role", string(who.Role))
			s.printer.Field("Home", string(s.nav.current))
			return nil
		},
	}
}
