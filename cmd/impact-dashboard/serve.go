package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/iwvelando/impact-dashboard/internal/server"
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard and its JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return eris.Wrapf(err, "failed to load server configuration at %s", serverConfigPath)
			}
			if address != "" {
				serverConf.Address = address
			}

			opts := serverConf.Options()
			opts.Title = a.conf.Title
			opts.Subtitle = a.conf.Subtitle
			opts.Version = version

			srv := &http.Server{
				Addr:              serverConf.Address,
				Handler:           server.NewHandler(a.logger, a.conf.NewModel(), opts),
				ReadHeaderTimeout: constants.ReadHeaderTimeout,
			}

			return runServer(ctx, a.logger, srv)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts the server down gracefully.
func runServer(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			zap.String("op", "main.serve"),
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server",
			zap.String("op", "main.serve"),
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "server shutdown")
		}
		return nil
	})

	return g.Wait()
}
