package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reminder_reviser/analytics"
	"reminder_reviser/config"
	"reminder_reviser/logging"
	"reminder_reviser/revision"
	"reminder_reviser/server"
	"reminder_reviser/tui"
)

var (
	configPath string
	logLevel   string
	listenAddr string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "reminder-reviser",
	Short: "催促文面添削 - tone-aware revision of reminder messages",
	Long: `Paste a Japanese reminder or follow-up message, pick a tone (soft, standard, firm)
and get an AI-revised version plus bullet-point feedback.

The web form is served by 'serve'; 'tui' runs the same form in the terminal.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form",
	Example: `  # Serve on the address from config.yaml (default :8080)
  GEMINI_API_KEY=... reminder-reviser serve

  # Offline development with the canned backend
  reminder-reviser serve --addr :3000 --log-level debug`,
	RunE: runServe,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the form in the terminal",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "HTTP listen address (overrides config.server_addr)")
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (the terminal itself stays clean)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

// setup loads config and brings up logging and analytics before any front end exists.
func setup(logOutput string) (config.Config, revision.Reviser, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if logOutput == "" {
		// the terminal UI owns the screen; logs go nowhere without --log-file
		logging.SetLogger(zap.NewNop())
	} else if err := logging.InitializeTo(level, logOutput); err != nil {
		return config.Config{}, nil, err
	}

	analytics.Init(analytics.Config{
		MeasurementID: cfg.Analytics.MeasurementID,
		APISecret:     cfg.Analytics.APISecret,
		Endpoint:      cfg.Analytics.Endpoint,
	})

	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return config.Config{}, nil, err
	}
	agent, err := revision.NewAgent(llm)
	if err != nil {
		return config.Config{}, nil, err
	}
	if !agent.Configured() {
		logging.Warn("No API key configured; revise requests will fail until GEMINI_API_KEY is set",
			zap.String("provider", cfg.LLM.Provider))
	}
	return cfg, agent, nil
}

func buildLLM(cfg config.LLMConfig) (revision.LLMClient, error) {
	settings := revision.LLMSettings{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout(),
	}
	switch cfg.Provider {
	case "gemini", "":
		return revision.NewGeminiLLM(settings, nil), nil
	case "genai":
		return revision.NewGenAILLM(settings, nil), nil
	case "openai":
		return revision.NewOpenAILLMFromConfig(settings), nil
	case "mock":
		return revision.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, reviser, err := setup("stdout")
	if err != nil {
		return err
	}
	defer logging.Sync()
	defer analytics.Flush()

	srv, err := server.New(reviser, server.Options{SessionTTL: cfg.Server.SessionTTL()})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	listen := cfg.ServerAddr
	if listenAddr != "" {
		listen = listenAddr
	}
	if listen == "" {
		listen = ":8080"
	}

	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Starting web server", zap.String("addr", listen))
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", listen)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout()+5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	_, reviser, err := setup(logFile)
	if err != nil {
		return err
	}
	defer logging.Sync()
	defer analytics.Flush()

	analytics.RecordPageView("tui")
	return tui.Run(reviser, analytics.Default(), tui.Options{})
}
