// Package dialog models the confirmation dialog used for destructive and
// blocking confirmations. The dialog holds no business logic: confirm and
// cancel are caller-supplied callbacks.
package dialog

// Variant styles the confirm button.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantDanger  Variant = "danger"
)

// Button identifies a dialog button.
type Button int

const (
	ButtonNone Button = iota
	ButtonCancel
	ButtonConfirm
)

// Key names the keys the dialog reacts to.
const (
	KeyEscape = "Escape"
	KeyEnter  = "Enter"
	KeyTab    = "Tab"
)

// LoadingText replaces the confirm label while IsLoading is set.
const LoadingText = "Loading..."

// Options describe a dialog's content.
type Options struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Variant     Variant
}

func (o Options) withDefaults() Options {
	if o.ConfirmText == "" {
		o.ConfirmText = "Confirm"
	}
	if o.CancelText == "" {
		o.CancelText = "Cancel"
	}
	if o.Variant == "" {
		o.Variant = VariantPrimary
	}
	return o
}

// Dialog is a modal confirmation. While open it owns focus and locks page
// scrolling; Escape and a backdrop click both cancel.
type Dialog struct {
	opts      Options
	onConfirm func()
	onCancel  func()

	open    bool
	loading bool
	focus   Button
}

// New creates a closed dialog.
func New(opts Options, onConfirm, onCancel func()) *Dialog {
	return &Dialog{opts: opts.withDefaults(), onConfirm: onConfirm, onCancel: onCancel}
}

// Options returns the dialog content with defaults applied.
func (d *Dialog) Options() Options { return d.opts }

// Open shows the dialog and focuses the confirm button.
func (d *Dialog) Open() {
	d.open = true
	d.focus = ButtonConfirm
}

// Close hides the dialog and releases focus and the scroll lock.
func (d *Dialog) Close() {
	d.open = false
	d.loading = false
	d.focus = ButtonNone
}

// IsOpen reports whether the dialog is shown.
func (d *Dialog) IsOpen() bool { return d.open }

// ScrollLocked reports whether page scrolling is disabled.
func (d *Dialog) ScrollLocked() bool { return d.open }

// Focused returns the button holding focus.
func (d *Dialog) Focused() Button { return d.focus }

// SetLoading toggles the busy state.
func (d *Dialog) SetLoading(loading bool) { d.loading = loading }

// IsLoading reports the busy state.
func (d *Dialog) IsLoading() bool { return d.loading }

// ButtonsDisabled reports whether both buttons are disabled.
func (d *Dialog) ButtonsDisabled() bool { return d.loading }

// ConfirmLabel is the confirm button text.
func (d *Dialog) ConfirmLabel() string {
	if d.loading {
		return LoadingText
	}
	return d.opts.ConfirmText
}

// CancelLabel is the cancel button text.
func (d *Dialog) CancelLabel() string { return d.opts.CancelText }

// Click presses a button. Disabled or closed dialogs ignore clicks.
func (d *Dialog) Click(b Button) bool {
	if !d.open || d.loading {
		return false
	}
	switch b {
	case ButtonConfirm:
		call(d.onConfirm)
		return true
	case ButtonCancel:
		call(d.onCancel)
		return true
	}
	return false
}

// ClickBackdrop cancels, even while loading.
func (d *Dialog) ClickBackdrop() {
	if d.open {
		call(d.onCancel)
	}
}

// HandleKey reacts to a key press. Escape cancels even while loading,
// Tab cycles focus between the two buttons and Enter presses the focused
// one.
func (d *Dialog) HandleKey(key string) {
	if !d.open {
		return
	}
	switch key {
	case KeyEscape:
		call(d.onCancel)
	case KeyTab:
		if d.focus == ButtonConfirm {
			d.focus = ButtonCancel
		} else {
			d.focus = ButtonConfirm
		}
	case KeyEnter:
		d.Click(d.focus)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
