package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/everforgeworks/umami-lab/internal/config"
	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/logger"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "umamilab",
	Short: "Umami Lab restaurant simulation server",
	Long: `umamilab hosts the Umami Lab game loop: buy ingredients, blend dishes,
and match each customer's flavor profile before the day runs out.

Use "serve" to run the HTTP/websocket API for a client, or "simulate"
to let a greedy bot play many runs and report how they ended.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Int64("seed", 0, "random seed for customer generation (0 = clock)")

	bindFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	bindFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	bindFlag(config.KeySeed, flags.Lookup("seed"))

	rootCmd.AddCommand(serveCmd, simulateCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and installs the logger it describes.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.InitLogger(logger.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Version:     Version,
		Environment: cfg.Environment,
		AddSource:   cfg.IsDevelopment(),
	})
	if f := v.ConfigFileUsed(); f != "" {
		log.Info("Using config file", "path", f)
	}
	return cfg, log, nil
}

// randomSource seeds customer generation. Seed 0 seeds from the clock.
func randomSource(seed int64) customer.RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)).Float64 //nolint:gosec // Game logic randomness, not security critical
}
