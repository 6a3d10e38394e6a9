package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-uibind/pkg/config"
)

func testDemo(t *testing.T) (*demo, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Output.PNG = filepath.Join(dir, "out.png")
	cfg.Output.HTML = filepath.Join(dir, "out.html")
	return &demo{
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		panelID: "translation",
	}, dir
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestDemo_Rectangles(t *testing.T) {
	app, _ := testDemo(t)
	if err := app.run(context.Background(), mode2D); err != nil {
		t.Fatalf("run: %v", err)
	}
	if png := readOutput(t, app.cfg.Output.PNG); !strings.HasPrefix(png, "\x89PNG") {
		t.Fatalf("expected a PNG file")
	}
}

func TestDemo_TranslationFitsAndLocalises(t *testing.T) {
	app, _ := testDemo(t)
	app.cfg.Scene.X = 1000
	app.cfg.Labels.Query = "ui-x=Horizontal"
	app.cfg.Labels.Locale = "fr-CA"
	app.cfg.Labels.Catalogs = map[string]map[string]string{
		"fr": {"ui-x": "Horizontale", "ui-y": "Verticale"},
	}

	if err := app.run(context.Background(), modeTranslate); err != nil {
		t.Fatalf("run: %v", err)
	}
	page := readOutput(t, app.cfg.Output.HTML)
	for _, want := range []string{
		`<div class="gman-widget-label">Horizontal</div>`,
		`<div class="gman-widget-label">Verticale</div>`,
		`<div class="gman-widget-value">300</div>`,
		`lang="fr-CA"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q\n%s", want, page)
		}
	}
	readOutput(t, app.cfg.Output.PNG)
}

func TestDemo_TranslationFromPanels(t *testing.T) {
	app, dir := testDemo(t)
	panels := filepath.Join(dir, "panels")
	if err := os.MkdirAll(panels, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := "panels:\n  translation:\n    fields:\n      - {key: outline, type: toggle, name: border}\n"
	if err := os.WriteFile(filepath.Join(panels, "ui.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write panel: %v", err)
	}
	app.cfg.Panels = panels

	if err := app.run(context.Background(), modeTranslate); err != nil {
		t.Fatalf("run: %v", err)
	}
	page := readOutput(t, app.cfg.Output.HTML)
	if !strings.Contains(page, `class="gman-checkbox-label">border</label>`) || strings.Contains(page, "gman-widget-slider") {
		t.Fatalf("page should only hold the panel's checkbox\n%s", page)
	}

	app.panelID = "missing"
	if err := app.run(context.Background(), modeTranslate); err == nil {
		t.Fatalf("expected unknown panel error")
	}
}

func TestDemo_Sliders(t *testing.T) {
	app, _ := testDemo(t)
	if err := app.run(context.Background(), modeSliders); err != nil {
		t.Fatalf("run: %v", err)
	}
	page := readOutput(t, app.cfg.Output.HTML)
	for _, want := range []string{`<div id="x" class="gman-panel">`, `<div id="y" class="gman-panel">`, `max="400"`, `max="300"`} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q\n%s", want, page)
		}
	}
}

func TestDemo_UnknownMode(t *testing.T) {
	app, _ := testDemo(t)
	if err := app.run(context.Background(), "3d"); err == nil {
		t.Fatalf("expected unknown mode error")
	}
}
