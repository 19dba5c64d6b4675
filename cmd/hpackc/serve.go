package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackenc/internal/config"
	"hpackenc/internal/demo"
	"hpackenc/internal/hpack"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		addr       string
		sampleEach time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live dynamic-table occupancy dashboard over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(flags.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			return runServe(cmd.Context(), addr, sampleEach, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&sampleEach, "sample-every", time.Second, "occupancy broadcast interval")

	return cmd
}

func runServe(ctx context.Context, addr string, sampleEach time.Duration, cfg *config.Config, logger *zap.Logger) error {
	conn := hpack.NewConn(cfg.MaxHeaderTableSize, logger)
	conn.SetMaxHeaderListSize(cfg.MaxHeaderListSize)

	dashboard := demo.NewDashboard(logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", dashboard)

	server := &http.Server{Addr: addr, Handler: mux}

	ticker := time.NewTicker(sampleEach)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			dashboard.Sample(conn.Encoder(), time.Now())
		}
	}()

	logger.Info("hpackc dashboard listening", zap.String("addr", addr))
	fmt.Printf("dashboard listening on %s (websocket at /ws)\n", addr)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return server.Close()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
