package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce/internal/config"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	appHTTP "github.com/cmlabs-hris/workforce/internal/handler/http"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/cmlabs-hris/workforce/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/workforce/internal/service/auth"
	serviceRecord "github.com/cmlabs-hris/workforce/internal/service/record"
	"github.com/go-chi/httplog/v3"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "workforce-api",
		Short:         "Workforce record store and identity provider",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), serve)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *database.DB) error {
					if err := database.Migrate(ctx, db); err != nil {
						return err
					}
					logger.Info("schema applied")
					return nil
				})
			},
		},
		newPromoteCommand(),
	)
	return root
}

// newPromoteCommand sets a user's role to admin. Admin accounts are
// provisioned out of band; there is no API for it.
func newPromoteCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *database.DB) error {
				records := newRecordService(db)
				if err := records.PromoteToAdmin(ctx, email); err != nil {
					return fmt.Errorf("promote %s: %w", email, err)
				}
				logger.Info("user promoted to admin", slog.String("email", email))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-api"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
}

func withDatabase(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *database.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, cfg, logger, db)
}

func newRecordService(db *database.DB) record.RecordService {
	return serviceRecord.NewRecordService(
		postgresql.NewProfileRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewLeaveRequestRepository(db),
		postgresql.NewReportRepository(db),
		postgresql.NewAccountRepository(db),
	)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *database.DB) error {
	sessionTTL, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	accountRepo := postgresql.NewAccountRepository(db)
	authSessionRepo := postgresql.NewAuthSessionRepository(db)

	credentialService := serviceAuth.NewAuthService(db, accountRepo, authSessionRepo, JWTService, sessionTTL)
	recordService := newRecordService(db)

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute)
	go authLimiter.Run(ctx)

	router := appHTTP.NewRouter(logger, cfg.App, JWTService, credentialService, authLimiter, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(credentialService),
		Profile:    appHTTP.NewProfileHandler(recordService),
		Attendance: appHTTP.NewAttendanceHandler(recordService),
		Leave:      appHTTP.NewLeaveHandler(recordService),
		Report:     appHTTP.NewReportHandler(recordService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(shutdownCtx)
}
