package tui

import "strings"

// Theme captures optional prefixes the session applies to printed
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithTitle sets the message of the control picker.
func WithTitle(title string) Option {
	return func(s *Session) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			s.title = trimmed
		}
	}
}

// WithDoneLabel renames the picker entry that ends Run.
func WithDoneLabel(label string) Option {
	return func(s *Session) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			s.doneLabel = trimmed
		}
	}
}
