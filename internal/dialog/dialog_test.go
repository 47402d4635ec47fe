package dialog

import (
	"strings"
	"testing"
)

type calls struct{ confirm, cancel int }

func newCounted(opts Options) (*Dialog, *calls) {
	c := &calls{}
	return New(opts, func() { c.confirm++ }, func() { c.cancel++ }), c
}

func TestDialog_Defaults(t *testing.T) {
	d, _ := newCounted(Options{Title: "Sure?"})
	if d.ConfirmLabel() != "Confirm" || d.CancelLabel() != "Cancel" {
		t.Errorf("unexpected labels %q / %q", d.ConfirmLabel(), d.CancelLabel())
	}
	if d.Options().Variant != VariantPrimary {
		t.Errorf("default variant = %q", d.Options().Variant)
	}
	if d.IsOpen() || d.ScrollLocked() {
		t.Error("new dialog must be closed")
	}
}

func TestDialog_OpenFocusesConfirm(t *testing.T) {
	d, _ := newCounted(Options{})
	d.Open()
	if d.Focused() != ButtonConfirm {
		t.Errorf("focus = %v, want confirm", d.Focused())
	}
	if !d.ScrollLocked() {
		t.Error("open dialog must lock scrolling")
	}
	d.Close()
	if d.ScrollLocked() || d.Focused() != ButtonNone {
		t.Error("close must release focus and scroll lock")
	}
}

func TestDialog_CancelPaths(t *testing.T) {
	tests := []struct {
		name string
		act  func(d *Dialog)
	}{
		{"escape", func(d *Dialog) { d.HandleKey(KeyEscape) }},
		{"backdrop", func(d *Dialog) { d.ClickBackdrop() }},
		{"cancel button", func(d *Dialog) { d.Click(ButtonCancel) }},
		{"tab then enter", func(d *Dialog) { d.HandleKey(KeyTab); d.HandleKey(KeyEnter) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newCounted(Options{})
			d.Open()
			tt.act(d)
			if c.cancel != 1 || c.confirm != 0 {
				t.Errorf("got %+v, want one cancel", *c)
			}
		})
	}
}

func TestDialog_EnterConfirms(t *testing.T) {
	d, c := newCounted(Options{})
	d.Open()
	d.HandleKey(KeyEnter)
	if c.confirm != 1 {
		t.Errorf("expected confirm, got %+v", *c)
	}
}

func TestDialog_Loading(t *testing.T) {
	d, c := newCounted(Options{ConfirmText: "Delete"})
	d.Open()
	d.SetLoading(true)

	if d.ConfirmLabel() != LoadingText {
		t.Errorf("confirm label = %q while loading", d.ConfirmLabel())
	}
	if !d.ButtonsDisabled() {
		t.Error("buttons must be disabled while loading")
	}
	if d.Click(ButtonConfirm) || d.Click(ButtonCancel) {
		t.Error("clicks must be ignored while loading")
	}
	d.HandleKey(KeyEscape)
	if c.confirm != 0 || c.cancel != 1 {
		t.Errorf("escape should still cancel while loading, got %+v", *c)
	}

	d.SetLoading(false)
	if d.ConfirmLabel() != "Delete" {
		t.Errorf("label not restored: %q", d.ConfirmLabel())
	}
}

func TestDialog_ClosedIgnoresInput(t *testing.T) {
	d, c := newCounted(Options{})
	d.HandleKey(KeyEscape)
	d.ClickBackdrop()
	d.Click(ButtonConfirm)
	if c.cancel != 0 || c.confirm != 0 {
		t.Errorf("closed dialog reacted: %+v", *c)
	}
}

func TestPresets(t *testing.T) {
	del := DeletePayment(nil, nil)
	if del.Options().Variant != VariantDanger {
		t.Error("delete dialog must use the danger variant")
	}
	if !strings.Contains(del.Options().Message, "invoice") {
		t.Error("delete dialog must mention the invoice")
	}

	inv := InvalidCharacter()
	inv.Open()
	inv.Click(ButtonConfirm)
	if inv.IsOpen() {
		t.Error("OK should close the invalid character notice")
	}
}
