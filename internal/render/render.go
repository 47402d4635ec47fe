// Package render draws FinanceBook views for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Income   lipgloss.Style
	Expense  lipgloss.Style
	Muted    lipgloss.Style
	Total    lipgloss.Style
	Border   lipgloss.Style
	TreeRoot lipgloss.Style
	Icon     lipgloss.Style
	Danger   lipgloss.Style
	Focused  lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the colour scheme used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Bold(true).Padding(0, 1),
		Income:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		Expense:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		Total:    lipgloss.NewStyle().Bold(true),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		TreeRoot: lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")).Bold(true),
		Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Renderer turns view models into terminal text.
type Renderer struct {
	styles  Styles
	printer *message.Printer
	title   cases.Caser
	iconURL string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles overrides the default styles.
func WithStyles(s Styles) Option {
	return func(r *Renderer) { r.styles = s }
}

// WithIconBaseURL sets the API base used to build icon URLs.
func WithIconBaseURL(base string) Option {
	return func(r *Renderer) { r.iconURL = base }
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		styles:  DefaultStyles(),
		printer: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) count(n int, singular, plural string) string {
	if n == 1 {
		return r.printer.Sprintf("%d %s", n, singular)
	}
	return r.printer.Sprintf("%d %s", n, plural)
}
