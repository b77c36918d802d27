package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/illumination-k/lifesci-mcp/internal/config"
	"github.com/illumination-k/lifesci-mcp/internal/logging"
	"github.com/illumination-k/lifesci-mcp/internal/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "lifesci-mcp",
	Short: "MCP server for life-science database APIs (Cellosaurus, PubMed, PubTator3, PubChem, Entrez)",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(logging.DefaultLogger(config.LogLevel(), config.LogDev()))

		srv := mcp.New(mcp.DefaultConfig())
		httpServer := &http.Server{
			Addr:    config.ListenAddr(),
			Handler: srv.Handler,
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() { <-sigs; cancel() }()

		errCh := make(chan error, 1)
		go func() {
			log.Info("serving", "addr", httpServer.Addr, "endpoint", "/mcp/jsonrpc")
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			log.Info("shutting down")
			return httpServer.Shutdown(shutdownCtx)
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	},
}

func main() {
	rootCmd.PersistentFlags().String(config.KeyListenAddr, ":8080", "listen address")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "log level")
	rootCmd.PersistentFlags().String(config.KeySourcesFile, "", "optional YAML file overriding upstream endpoints")
	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
