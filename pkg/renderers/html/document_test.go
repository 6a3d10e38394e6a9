package html

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uibind/pkg/binding"
	"github.com/goliatone/go-uibind/pkg/labels"
	"github.com/goliatone/go-uibind/pkg/model"
)

func boundDocument(t *testing.T, options ...Option) (*Document, *binding.Set, model.Values) {
	t.Helper()
	doc, err := NewDocument(options...)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	panel, err := doc.Slot("#ui")
	if err != nil {
		t.Fatalf("slot: %v", err)
	}
	state := model.Values{"x": 40.0, "outline": true, "palette": 1}
	set, err := binding.Bind(panel, state, []model.Descriptor{
		{Key: "x", Widget: model.Slider{Max: 400}},
		{Key: "outline", Widget: model.Checkbox{}},
		{Key: "palette", Widget: model.Option{Options: []string{"warm", "cool", "mono"}}},
	}, binding.WithLocalizer(labels.Table{
		"ui-x":    "X <script>alert(1)</script>",
		"ui-cool": "Cool & calm",
	}))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	return doc, set, state
}

func render(t *testing.T, doc *Document) string {
	t.Helper()
	var b strings.Builder
	if err := doc.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestDocument_RendersWidgetMarkup(t *testing.T) {
	doc, _, _ := boundDocument(t, WithTitle("Rectangles"))
	out := render(t, doc)

	wants := []string{
		"<title>Rectangles</title>",
		`<div id="ui" class="gman-panel">`,
		`<div class="gman-widget-value">40</div>`,
		`<input class="gman-widget-slider" type="range" min="0" max="400" value="40" />`,
		`class="gman-widget-checkbox" checked />`,
		`<label for="__widget_1" class="gman-checkbox-label">outline</label>`,
		`<option value="1" selected>Cool &amp; calm</option>`,
		`<option value="0">warm</option>`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered page missing %q\n%s", want, out)
		}
	}
}

func TestDocument_SanitizesLabels(t *testing.T) {
	doc, _, _ := boundDocument(t)
	out := render(t, doc)
	if strings.Contains(out, "<script>") {
		t.Fatalf("label markup leaked into page:\n%s", out)
	}
	if !strings.Contains(out, `<div class="gman-widget-label">X</div>`) {
		t.Fatalf("expected sanitised slider label:\n%s", out)
	}
}

func TestDocument_RenderReflectsPush(t *testing.T) {
	doc, set, state := boundDocument(t)
	binding.Push(set, map[string]any{"x": 125, "outline": false, "palette": 9})
	out := render(t, doc)

	if !strings.Contains(out, `<div class="gman-widget-value">125</div>`) {
		t.Fatalf("pushed slider value not rendered:\n%s", out)
	}
	if strings.Contains(out, " checked") {
		t.Fatalf("checkbox should render unchecked:\n%s", out)
	}
	if strings.Contains(out, " selected") {
		t.Fatalf("out of range push should clear the selection:\n%s", out)
	}
	if state["x"] != 40.0 {
		t.Fatalf("push must not write the target, x=%v", state["x"])
	}
}

func TestDocument_Theme(t *testing.T) {
	doc, _, _ := boundDocument(t, WithTheme(&theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{
			"--brand":   "#123456",
			"panel-gap": "4px;}",
		},
		AssetURL: func(key string) string {
			return "/themes/acme/" + key
		},
	}))
	out := render(t, doc)

	wants := []string{
		`data-theme="acme"`,
		`data-theme-variant="dark"`,
		"--brand: #123456;",
		"--panel-gap: 4px;",
		`<link rel="stylesheet" href="/themes/acme/uibind.stylesheet">`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("themed page missing %q\n%s", want, out)
		}
	}
}

func TestDocument_FindAndSlots(t *testing.T) {
	doc, err := NewDocument()
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if doc.Find("#x") != nil {
		t.Fatalf("missing slot should not be found")
	}
	if _, err := doc.Slot("x"); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}

	for _, selector := range []string{"#y", "#x", "#y"} {
		if _, err := doc.Slot(selector); err != nil {
			t.Fatalf("slot %s: %v", selector, err)
		}
	}
	var ids []string
	for _, panel := range doc.Panels() {
		ids = append(ids, panel.ID())
	}
	if diff := cmp.Diff([]string{"y", "x"}, ids); diff != "" {
		t.Fatalf("panel order mismatch (-want +got):\n%s", diff)
	}

	b := binding.New()
	w, err := b.SetupSlider(doc, "#x", binding.SliderSetup{Spec: model.Slider{Max: 300}})
	if err != nil || w == nil {
		t.Fatalf("setup slider on existing slot: %v, %v", w, err)
	}
	if got := doc.Find("#x"); got == nil || got.(*Panel).Len() != 1 {
		t.Fatalf("slider not appended to #x")
	}
	if w, err := b.SetupSlider(doc, "#z", binding.SliderSetup{}); w != nil || err != nil {
		t.Fatalf("unknown slot should be a no-op, got %v, %v", w, err)
	}
}

func TestDocument_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"document.tmpl": {Data: []byte(`{% for panel in panels %}{% include "panel.tmpl" %}{% endfor %}`)},
		"panel.tmpl":    {Data: []byte(`[{{ panel.id }}:{% for w in panel.widgets %}{% include "widget.tmpl" %}{% endfor %}]`)},
		"widget.tmpl":   {Data: []byte(`{{ w.key }}={{ w.display }}{{ w.checked }};`)},
	}
	doc, _, _ := boundDocument(t, WithTemplatesFS(files))
	if diff := cmp.Diff("[ui:x=40;outline=True;palette=;]", render(t, doc)); diff != "" {
		t.Fatalf("custom template output mismatch (-want +got):\n%s", diff)
	}
}
