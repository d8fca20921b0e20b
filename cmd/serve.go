package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/umami-lab/internal/api"
	"github.com/everforgeworks/umami-lab/internal/config"
	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/game"
	"github.com/everforgeworks/umami-lab/internal/history"
	"github.com/everforgeworks/umami-lab/internal/logger"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game API and websocket feed",
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.Int("port", 8080, "HTTP listen port")
	flags.Duration("tick-interval", game.DefaultTickInterval, "length of one countdown second")

	bindFlag(config.KeyPort, flags.Lookup("port"))
	bindFlag(config.KeyTickInterval, flags.Lookup("tick-interval"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Configuration and logging
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Game session and run history
	runs := history.NewStore(history.Config{Size: cfg.HistorySize, TTL: cfg.HistoryTTL})
	session := game.NewSession(game.Options{
		Generator:    customer.NewGenerator(randomSource(cfg.Seed)),
		TickInterval: cfg.TickInterval,
		Recorder:     runs,
		Logger:       log,
	})
	defer session.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Real-time hub, fed by every session transition
	hub := api.NewHub(log)
	go hub.Run(ctx)
	unsubscribe := session.Subscribe(hub.PublishSnapshot)
	defer unsubscribe()
	hub.PublishSnapshot(session.Snapshot())

	// 4. SIGHUP re-reads configuration and applies the new log level
	go watchReload(ctx)

	// 5. HTTP server
	srv := api.NewServer(cfg.Addr(), api.NewRouter(api.NewHandlers(session, runs), hub))
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	log.Info("Umami Lab server live", "addr", cfg.Addr(), "run_id", session.Snapshot().RunID)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func watchReload(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigChan:
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				logger.FromContext(ctx).Error("SIGNAL: reload failed", "error", err)
				continue
			}
			logger.SetLevel(cfg.LogLevel)
			logger.FromContext(ctx).Info("SIGNAL: configuration reloaded", "log_level", cfg.LogLevel)
		}
	}
}
