package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	service "github.com/okian/elorun/internal/app"
	"github.com/okian/elorun/internal/config"
	"github.com/okian/elorun/pkg/logger"
)

// Default flag values.
const (
	defaultConfigPath = "config.json"
)

func main() {
	var (
		matchesPath   = flag.String("matches", "", "Path to the matches file (required)")
		standingsPath = flag.String("standings", "", "Path to the standings file (required)")
		outputPath    = flag.String("output", "", "Path to write updated standings (required)")
		configPath    = flag.String("config", defaultConfigPath, "Path to the config file")
		topN          = flag.Int("top", 0, "Print the top N teams after the run")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.StringVar(configPath, "c", defaultConfigPath, "Path to the config file (shorthand)")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *matchesPath == "" || *standingsPath == "" || *outputPath == "" {
		os.Stderr.WriteString("elorun: -matches, -standings, and -output are required\n")
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.String("config", *configPath), logger.Error(err))
		os.Exit(1)
	}

	// Apply configured log level unless -verbose already forced debug.
	if !*verbose {
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
			_ = logger.SetLevelString("info")
		}
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithConfig(cfg),
		service.WithPaths(*matchesPath, *standingsPath, *outputPath),
		service.WithTopN(*topN),
	)
	if err := svc.Run(ctx); err != nil {
		log.Error(ctx, "rating run failed", logger.Error(err))
		os.Exit(1)
	}
}
