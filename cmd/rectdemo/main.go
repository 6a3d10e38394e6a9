package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-uibind"
	"github.com/goliatone/go-uibind/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file (defaults when absent)")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to -config and exit")
	mode := flag.String("mode", modeTranslate, "demo to run: 2d, translate or sliders")
	panels := flag.String("panels", "", "directory of YAML/JSON panel documents (overrides config)")
	panelID := flag.String("panel", "translation", "panel id to bind in translate mode")
	query := flag.String("query", "", "label overrides in query form, e.g. ui-x=Horizontal (overrides config)")
	lang := flag.String("lang", "", "preferred locales, Accept-Language form (overrides config)")
	pngPath := flag.String("png", "", "PNG output path (overrides config)")
	htmlPath := flag.String("html", "", "HTML output path (overrides config)")
	interactive := flag.Bool("interactive", false, "edit the controls in the terminal")
	verbose := flag.Bool("v", false, "log binding decisions")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	uibind.SetLogger(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	override(&cfg.Panels, *panels)
	override(&cfg.Labels.Query, *query)
	override(&cfg.Labels.Locale, *lang)
	override(&cfg.Output.PNG, *pngPath)
	override(&cfg.Output.HTML, *htmlPath)

	if *writeConfig {
		if *configPath == "" {
			log.Fatalf("-write-config needs -config")
		}
		if err := config.Write(*configPath, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Config written to %s\n", *configPath)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &demo{
		cfg:         cfg,
		logger:      logger,
		panelID:     *panelID,
		interactive: *interactive,
	}
	if err := app.run(ctx, *mode); err != nil {
		log.Fatalf("rectdemo: %v", err)
	}
}

func override(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}
