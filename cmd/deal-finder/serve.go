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
	"golang.org/x/sync/errgroup"

	httpapi "github.com/fairyhunter13/deal-finder-service/internal/http"
	"github.com/fairyhunter13/deal-finder-service/internal/obs"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(parent context.Context, opts *options) error {
	cfg := opts.cfg
	obs.Logger.Info().Msg("service_starting")

	cat, err := opts.loadCatalog()
	if err != nil {
		obs.Logger.Error().Err(err).Msg("catalog_load_error")
		return err
	}
	st := cat.Stats()
	obs.Logger.Info().Int("areas", st.Areas).Int("listings", st.Listings).Msg("catalog_loaded")

	app := httpapi.NewApp(cfg, cat)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		obs.Logger.Info().Str("addr", cfg.HTTPAddr).Msg("http_listen")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error().Err(err).Msg("http_server_error")
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		obs.Logger.Info().Msg("shutdown_signal")
		ctxSrv, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxSrv); err != nil {
			obs.Logger.Error().Err(err).Msg("http_shutdown_error")
			return err
		}
		return nil
	})
	err = g.Wait()
	obs.Logger.Info().Msg("service_stopped")
	return err
}
