package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vytalhealth/vytal/internal/api"
	"github.com/vytalhealth/vytal/internal/cli"
	"github.com/vytalhealth/vytal/internal/config"
	"github.com/vytalhealth/vytal/internal/i18n"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vytal",
		Short:        "Personal health diary, summaries and prescription helper",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportReportCmd())
	rootCmd.AddCommand(resetCacheCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE:  runServe,
	}
}

func exportReportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export-report",
		Short: "Write the health summary report as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()
			return cli.RunExportReportCommand(cmd.Context(), app.summaries, outPath, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "Health_Report.pdf", "output file or directory")
	return cmd
}

func resetCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-cache",
		Short: "Drop the cached diary snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()
			return cli.RunResetCacheCommand(cmd.Context(), app.diary, cmd.OutOrStdout())
		},
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.Close()

	i18nManager, err := i18n.NewManager(app.cfg.DefaultLanguage)
	if err != nil {
		app.logger.Error("i18n init failed", zap.Error(err))
		return err
	}

	handler, err := api.NewHandler(api.Dependencies{
		Diary:         app.diary,
		Summaries:     app.summaries,
		Prescriptions: app.prescriptions,
	}, i18nManager, app.cfg.Location, app.cfg.CookieSecure, app.logger.Named("http"))
	if err != nil {
		app.logger.Error("handler init failed", zap.Error(err))
		return err
	}

	server := newFiberApp(app.cfg)
	server.Use(recover.New())
	server.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	server.Use(compress.New())
	server.Use(handler.LanguageMiddleware)
	server.Use(csrf.New(csrfMiddlewareConfig(app.cfg.CookieSecure)))
	api.RegisterRoutes(server, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			app.logger.Warn("server shutdown failed", zap.Error(err))
		}
	}()

	app.logStartup(sigCtx)
	if err := server.Listen(":" + app.cfg.Port); err != nil {
		app.logger.Error("server exited", zap.Error(err))
		return err
	}
	return nil
}

func newFiberApp(cfg config.Config) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "Vytal",
		DisableStartupMessage: true,
		BodyLimit:             cfg.MaxUploadBytes(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          api.ErrorHandler,
	})
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "vytal_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}
