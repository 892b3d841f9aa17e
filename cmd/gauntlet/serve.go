package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/gauntlet/pkg/adapters/http"
	redisStore "github.com/aretw0/gauntlet/pkg/adapters/redis"
	"github.com/aretw0/gauntlet/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP run server",
	Long: `Starts an HTTP server that accepts suite definitions on POST /run,
executes them, and returns the results as JSON. Prometheus metrics are
exposed on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithRecorder(observability.New(nil)),
		}
		if redisAddr != "" {
			store := redisStore.New(redisAddr, "", 0)
			defer store.Close()
			opts = append(opts, httpAdapter.WithStore(store))
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)
		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address to persist results to (host:port)")
}
