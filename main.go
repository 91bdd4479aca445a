package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weatherdash/internal/config"
	"weatherdash/internal/logging"
	"weatherdash/internal/query"
	"weatherdash/internal/ui"
	"weatherdash/internal/weatherapi"
)

func main() {
	// Parse command line arguments
	var configPath, city string
	var saveConfig bool
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&city, "city", "", "City to look up on start")
	flag.StringVar(&city, "c", "", "City to look up on start (shorthand)")
	flag.BoolVar(&saveConfig, "save-config", false, "Write the merged configuration to the config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if city != "" {
		cfg.UI.DefaultCity = city
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if cfg.Weather.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Set WEATHER_API_KEY in the environment or a .env file.")
		}
		os.Exit(1)
	}

	// Set up logging
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if saveConfig {
		if err := configSvc.Save(cfg); err != nil {
			logger.Error("failed to save config", zap.String("path", configSvc.Path()), zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", configSvc.Path()))
		}
	}

	client, err := weatherapi.New(weatherapi.Params{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.Weather.Timeout.Duration,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := query.NewRunner(ctx, client, logger)
	model := ui.NewModel(cfg, runner, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		p.Quit()
	}()

	logger.Info("starting UI", zap.String("city", cfg.UI.DefaultCity), zap.Duration("debounce", cfg.UI.Debounce.Duration))
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally")
}
