package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anmicius0/lexicon/internal/client"
	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/matcher"
	"github.com/anmicius0/lexicon/internal/server"
	"github.com/anmicius0/lexicon/internal/service"
	"github.com/anmicius0/lexicon/internal/utils"
	"github.com/anmicius0/lexicon/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "lexicon",
		Short:        "Find every case-insensitive position of a subtext in a text",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "path to the .env configuration file")

	root.AddCommand(
		newServeCmd(&configFile),
		newFindCmd(&configFile),
		newInfoCmd(&configFile),
		newQueryCmd(),
	)
	return root
}

// newPositionsService wires the validator and matcher into the service.
func newPositionsService(cfg *config.Config) *service.PositionsService {
	return service.NewPositionsService(cfg, validation.NewValidator(), matcher.New())
}

func newServeCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the character positions HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load(*configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			utils.Logger.Info("Configuration loaded successfully")

			router := server.NewRouter(appConfig, newPositionsService(appConfig))
			return startServer(cmd.Context(), router, appConfig)
		},
	}
	cmd.Flags().String("host", config.DefaultAPIHost, "interface to listen on")
	cmd.Flags().Int("port", config.DefaultPort, "port to listen on")
	return cmd
}

// startServer serves router until the listener fails, a SIGINT/SIGTERM
// arrives or ctx is cancelled, then shuts the server down gracefully.
func startServer(ctx context.Context, router http.Handler, appConfig *config.Config) error {
	httpServer := &http.Server{
		Addr:         appConfig.Addr(),
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.APIHost),
		zap.Int(utils.FieldPort, appConfig.Port))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		utils.Logger.Error("Server failed to start", zap.Error(err))
		return err
	case sig := <-sigChan:
		utils.Logger.Info("Shutdown signal received", zap.String(utils.FieldSignal, sig.String()))
	case <-ctx.Done():
		utils.Logger.Info("Shutdown requested", zap.Error(ctx.Err()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Error("Server shutdown error", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	utils.Logger.Info("Server stopped")
	return nil
}

// matchInputFromFlags leaves a field nil when its flag was not given so the
// validator can tell a missing value from an empty one.
func matchInputFromFlags(cmd *cobra.Command) *config.MatchInput {
	input := &config.MatchInput{}
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		input.Text = &text
	}
	if cmd.Flags().Changed("subtext") {
		subtext, _ := cmd.Flags().GetString("subtext")
		input.Subtext = &subtext
	}
	return input
}

func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "main text to search")
	cmd.Flags().String("subtext", "", "subtext to look for")
}

func newFindCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the character positions of a subtext without starting a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load(*configFile, nil)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			positions, err := newPositionsService(appConfig).GetCharacterPositions(cmd.Context(), matchInputFromFlags(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), positions)
		},
	}
	addMatchFlags(cmd)
	return cmd
}

func newInfoCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print product name and version",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load(*configFile, nil)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), appConfig.Info())
		},
	}
}

func newQueryCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask a running server for the character positions of a subtext",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewPositionsClient(baseURL, timeout)
			defer c.Close()

			positions, err := c.FindPositions(matchInputFromFlags(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), positions)
		},
	}
	addMatchFlags(cmd)
	cmd.Flags().StringVar(&baseURL, "url", fmt.Sprintf("http://%s:%d", config.DefaultAPIHost, config.DefaultPort), "base URL of the API")
	cmd.Flags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "request timeout")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
