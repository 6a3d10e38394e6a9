package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-uibind/internal/logging"
	"github.com/goliatone/go-uibind/pkg/model"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// editable is implemented by widgets that accept user input.
type editable interface {
	widgets.Element
	Input(raw any) error
}

// Session is a terminal container: appended widgets become entries of a
// picker and each answer is fed back to the widget as a user edit.
type Session struct {
	driver    PromptDriver
	theme     Theme
	title     string
	doneLabel string

	controls []editable
}

// NewSession constructs a session that prompts through survey unless
// another driver is configured.
func NewSession(options ...Option) *Session {
	s := &Session{
		driver:    newSurveyDriver(),
		title:     "Adjust",
		doneLabel: "Done",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Append registers a widget element. Elements that cannot take input are
// ignored.
func (s *Session) Append(el widgets.Element) {
	ctrl, ok := el.(editable)
	if !ok {
		logging.Logger().Debug("tui: element is not editable", "id", el.ID())
		return
	}
	s.controls = append(s.controls, ctrl)
}

// Len reports the number of editable controls.
func (s *Session) Len() int { return len(s.controls) }

// Run lets the user pick a control and edit it until the done entry is
// chosen. Rejected edits are reported and the loop continues; prompt errors
// and cancellation end the run.
func (s *Session) Run(ctx context.Context) error {
	if len(s.controls) == 0 {
		return ErrNoControls
	}
	last := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries := make([]string, 0, len(s.controls)+1)
		for _, ctrl := range s.controls {
			entries = append(entries, summary(ctrl.View()))
		}
		entries = append(entries, s.doneLabel)

		choice, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.theme.PromptPrefix + s.title,
			Options:      entries,
			DefaultIndex: last,
		})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= len(s.controls) {
			return nil
		}
		last = choice

		if err := s.edit(ctx, s.controls[choice]); err != nil {
			return err
		}
	}
}

func (s *Session) edit(ctx context.Context, ctrl editable) error {
	view := ctrl.View()
	raw, err := s.prompt(ctx, view)
	if err != nil {
		return err
	}
	if err := ctrl.Input(raw); err != nil {
		logging.Logger().Warn("tui: edit rejected", "key", view.Key, "error", err)
		return s.driver.Info(ctx, s.theme.ErrorPrefix+err.Error())
	}
	return s.driver.Info(ctx, s.theme.InfoPrefix+summary(ctrl.View()))
}

func (s *Session) prompt(ctx context.Context, view widgets.View) (any, error) {
	message := s.theme.PromptPrefix + view.Label
	switch view.Type {
	case model.WidgetSlider:
		return s.promptPosition(ctx, message, view)
	case model.WidgetCheckbox:
		return s.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: view.Checked,
		})
	case model.WidgetOption:
		return s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      view.Options,
			DefaultIndex: view.Selected,
		})
	default:
		return nil, fmt.Errorf("tui: unsupported widget type %q", view.Type)
	}
}

// promptPosition asks for a slider position until one inside the control
// range is given.
func (s *Session) promptPosition(ctx context.Context, message string, view widgets.View) (int, error) {
	validate := func(answer string) error {
		_, err := parsePosition(answer, view.Min, view.Max)
		return err
	}
	cfg := InputConfig{
		Message:   fmt.Sprintf("%s [%s..%s]", message, formatPosition(view.Min), formatPosition(view.Max)),
		Default:   formatPosition(view.Position),
		Help:      "slider position; the value shown is " + view.Display,
		Validator: validate,
	}
	for {
		answer, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return 0, err
		}
		position, err := parsePosition(answer, view.Min, view.Max)
		if err == nil {
			return position, nil
		}
		if !errors.Is(err, ErrInvalidPosition) {
			return 0, err
		}
		if err := s.driver.Info(ctx, s.theme.ErrorPrefix+err.Error()); err != nil {
			return 0, err
		}
	}
}

func parsePosition(answer string, min, max float64) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPosition, answer)
	}
	if float64(position) < min || float64(position) > max {
		return 0, fmt.Errorf("%w: %d not in [%s..%s]", ErrInvalidPosition, position, formatPosition(min), formatPosition(max))
	}
	return position, nil
}

func formatPosition(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func summary(view widgets.View) string {
	switch view.Type {
	case model.WidgetSlider:
		return view.Label + ": " + view.Display
	case model.WidgetCheckbox:
		if view.Checked {
			return view.Label + ": on"
		}
		return view.Label + ": off"
	case model.WidgetOption:
		if view.Selected >= 0 && view.Selected < len(view.Options) {
			return view.Label + ": " + view.Options[view.Selected]
		}
		return view.Label + ": -"
	default:
		return view.Label
	}
}
