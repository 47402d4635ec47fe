package render

import (
	"github.com/charmbracelet/lipgloss"

	"financebook/internal/dialog"
)

// Dialog renders an open confirmation dialog. The focused button is
// bracketed and a danger variant colours the confirm label.
func (r *Renderer) Dialog(d *dialog.Dialog) string {
	if !d.IsOpen() {
		return ""
	}
	opts := d.Options()

	confirm := d.ConfirmLabel()
	if opts.Variant == dialog.VariantDanger {
		confirm = r.styles.Danger.Render(confirm)
	}
	cancel := d.CancelLabel()

	switch d.Focused() {
	case dialog.ButtonConfirm:
		confirm = r.styles.Focused.Render("[ ") + confirm + r.styles.Focused.Render(" ]")
	case dialog.ButtonCancel:
		cancel = r.styles.Focused.Render("[ ") + cancel + r.styles.Focused.Render(" ]")
	}

	buttons := cancel + "   " + confirm
	if d.ButtonsDisabled() {
		buttons = r.styles.Muted.Render(buttons)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(opts.Title),
		"",
		lipgloss.NewStyle().Width(60).Render(opts.Message),
		"",
		buttons,
	)
	return r.styles.Box.Render(body)
}
