package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codingconcepts/animerelay/logger"
	"github.com/codingconcepts/animerelay/relay"
)

const shutdownGrace = 5 * time.Second

// Serve runs the relay's HTTP server until it receives SIGINT or SIGTERM.
func Serve(opts *Options) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(opts.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		config := opts.Config()
		log.Info("config", zap.String("relay", config.String()), zap.Duration("timeout", opts.Timeout))

		c := opts.Client()
		handler := relay.NewHandler(log,
			relay.NewResolver(log, c, config),
			relay.NewImages(log, c, config))

		srv := &http.Server{
			Addr:    net.JoinHostPort(opts.Address, strconv.Itoa(opts.Port)),
			Handler: handler,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errs := make(chan error, 1)
		go func() {
			log.Info("listening", zap.String("addr", srv.Addr))
			errs <- srv.ListenAndServe()
		}()

		select {
		case err = <-errs:
			return fmt.Errorf("serving on %s: %w", srv.Addr, err)
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if err = srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		if err = <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving on %s: %w", srv.Addr, err)
		}
		return nil
	}
}

func newLogger(levelName string) (*zap.Logger, error) {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewZapLogger(level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}
