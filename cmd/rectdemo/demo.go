package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibind/pkg/binding"
	"github.com/goliatone/go-uibind/pkg/config"
	"github.com/goliatone/go-uibind/pkg/labels"
	"github.com/goliatone/go-uibind/pkg/model"
	"github.com/goliatone/go-uibind/pkg/renderers/html"
	"github.com/goliatone/go-uibind/pkg/renderers/tui"
	"github.com/goliatone/go-uibind/pkg/scene"
	"github.com/goliatone/go-uibind/pkg/schema"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

const (
	mode2D        = "2d"
	modeTranslate = "translate"
	modeSliders   = "sliders"
)

type demo struct {
	cfg         config.Config
	logger      *slog.Logger
	panelID     string
	interactive bool

	canvas *scene.Canvas
	rng    *rand.Rand
}

func (d *demo) run(ctx context.Context, mode string) error {
	seed := d.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	d.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	d.logger.Debug("rectdemo: seeded", "seed", seed)

	canvas, err := scene.NewCanvas(d.cfg.Canvas.Width, d.cfg.Canvas.Height)
	if err != nil {
		return err
	}
	defer canvas.Close()
	if _, err := canvas.ResizeToDisplaySize(d.cfg.Canvas.Width, d.cfg.Canvas.Height, d.cfg.Canvas.Multiplier); err != nil {
		return err
	}
	d.canvas = canvas

	switch mode {
	case mode2D:
		return d.runRectangles()
	case modeTranslate:
		return d.runTranslation(ctx)
	case modeSliders:
		return d.runSliders(ctx)
	default:
		return fmt.Errorf("unknown mode %q (want %s, %s or %s)", mode, mode2D, modeTranslate, modeSliders)
	}
}

func (d *demo) runRectangles() error {
	shapes, err := scene.RandomRectangles(d.canvas, d.rng, scene.RandomRectangleCount)
	if err != nil {
		return err
	}
	d.logger.Info("rectdemo: drew rectangles", "count", len(shapes))
	return d.savePNG()
}

// runTranslation binds the translated rectangle to a widget panel. Every
// edit redraws and saves the image.
func (d *demo) runTranslation(ctx context.Context) error {
	tr := d.newTranslation()
	redraw := d.redrawFunc(tr)

	descs, err := d.descriptors(tr, redraw)
	if err != nil {
		return err
	}
	localizer, err := d.localizer()
	if err != nil {
		return err
	}
	doc, err := d.document()
	if err != nil {
		return err
	}
	panel, err := doc.Slot("#ui")
	if err != nil {
		return err
	}

	var session *tui.Session
	var container binding.Container = panel
	if d.interactive {
		session = tui.NewSession(tui.WithTitle("Translation"))
		container = binding.ContainerFunc(func(el widgets.Element) {
			panel.Append(el)
			session.Append(el)
		})
	}

	set, err := binding.New(binding.WithLocalizer(localizer)).Bind(container, model.MustStruct(tr), descs)
	if err != nil {
		return err
	}
	// configured positions may lie outside a smaller canvas
	if tr.Fit(d.canvas) {
		d.logger.Info("rectdemo: moved rectangle inside canvas", "x", tr.X, "y", tr.Y)
		binding.Push(set, tr.State())
	}
	redraw()

	if session != nil {
		if err := session.Run(ctx); err != nil && !errors.Is(err, tui.ErrAborted) {
			return err
		}
	}
	return d.saveHTML(doc)
}

// runSliders wires standalone x/y sliders into their own slots, each slide
// moving the rectangle.
func (d *demo) runSliders(ctx context.Context) error {
	tr := d.newTranslation()
	redraw := d.redrawFunc(tr)

	localizer, err := d.localizer()
	if err != nil {
		return err
	}
	doc, err := d.document()
	if err != nil {
		return err
	}
	for _, selector := range []string{"#x", "#y"} {
		if _, err := doc.Slot(selector); err != nil {
			return err
		}
	}

	b := binding.New(binding.WithLocalizer(localizer))
	var session *tui.Session
	if d.interactive {
		session = tui.NewSession(tui.WithTitle("Translation"))
	}
	sliders := []struct {
		selector string
		value    float64
		max      int
		apply    func(float64)
	}{
		{"#x", tr.X, d.canvas.Width(), func(v float64) { tr.X = v }},
		{"#y", tr.Y, d.canvas.Height(), func(v float64) { tr.Y = v }},
	}
	for _, s := range sliders {
		apply := s.apply
		w, err := b.SetupSlider(doc, s.selector, binding.SliderSetup{
			Value: s.value,
			Spec:  model.Slider{Max: float64(s.max)},
			Slide: func(v float64) {
				apply(v)
				redraw()
			},
		})
		if err != nil {
			return err
		}
		if session != nil && w != nil {
			session.Append(w.Elem())
		}
	}
	redraw()

	if session != nil {
		if err := session.Run(ctx); err != nil && !errors.Is(err, tui.ErrAborted) {
			return err
		}
	}
	return d.saveHTML(doc)
}

func (d *demo) newTranslation() *scene.Translation {
	tr := scene.NewTranslation(d.rng)
	tr.X, tr.Y = d.cfg.Scene.X, d.cfg.Scene.Y
	tr.Outline, tr.Palette = d.cfg.Scene.Outline, d.cfg.Scene.Palette
	return tr
}

func (d *demo) redrawFunc(tr *scene.Translation) func() {
	return func() {
		if err := tr.Draw(d.canvas); err != nil {
			d.logger.Error("rectdemo: draw failed", "error", err)
			return
		}
		if err := d.savePNG(); err != nil {
			d.logger.Error("rectdemo: save failed", "error", err)
		}
	}
}

// descriptors loads the configured panel, or falls back to the scene's own
// field list.
func (d *demo) descriptors(tr *scene.Translation, change func()) ([]model.Descriptor, error) {
	if d.cfg.Panels == "" {
		return tr.Descriptors(d.canvas, change), nil
	}
	store, err := schema.LoadFS(os.DirFS(d.cfg.Panels))
	if err != nil {
		return nil, err
	}
	panel, ok := store.Panel(d.panelID)
	if !ok {
		return nil, fmt.Errorf("panel %q not found in %s (have %v)", d.panelID, d.cfg.Panels, store.IDs())
	}
	return panel.Descriptors(change), nil
}

// localizer layers the query overrides over the catalog table picked for
// the preferred locale.
func (d *demo) localizer() (labels.Localizer, error) {
	query := labels.ParseQuery(d.cfg.Labels.Query, nil)
	if len(d.cfg.Labels.Catalogs) == 0 {
		return query, nil
	}
	tables := make(map[string]labels.Table, len(d.cfg.Labels.Catalogs)+1)
	for locale, entries := range d.cfg.Labels.Catalogs {
		tables[locale] = labels.Table(entries)
	}
	fallback := d.cfg.Labels.Fallback
	if _, ok := tables[fallback]; !ok {
		tables[fallback] = labels.Table{}
	}
	catalog, err := labels.NewCatalog(fallback, tables)
	if err != nil {
		return nil, err
	}
	return labels.Chain(query, catalog.Select(d.cfg.Labels.Locale)), nil
}

func (d *demo) document() (*html.Document, error) {
	lang := d.cfg.Labels.Locale
	if lang == "" {
		lang = d.cfg.Labels.Fallback
	}
	return html.NewDocument(
		html.WithTitle("Rectangles"),
		html.WithLang(lang),
		html.WithTheme(&theme.RendererConfig{
			Theme:   d.cfg.Theme.Name,
			Variant: d.cfg.Theme.Variant,
			Tokens:  d.cfg.Theme.Tokens,
			CSSVars: d.cfg.Theme.CSSVars,
		}),
	)
}

func (d *demo) savePNG() error {
	if d.cfg.Output.PNG == "" {
		return nil
	}
	return d.canvas.SavePNG(d.cfg.Output.PNG)
}

func (d *demo) saveHTML(doc *html.Document) error {
	if d.cfg.Output.HTML == "" {
		return nil
	}
	f, err := os.Create(d.cfg.Output.HTML)
	if err != nil {
		return fmt.Errorf("create %s: %w", d.cfg.Output.HTML, err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	d.logger.Info("rectdemo: controls written", "path", d.cfg.Output.HTML)
	return nil
}
