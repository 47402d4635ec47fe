package dialog

// DeletePayment builds the confirmation shown before a payment item is
// deleted. The message warns that the invoice goes with it.
func DeletePayment(onConfirm, onCancel func()) *Dialog {
	return New(Options{
		Title:       "Delete Payment",
		Message:     "Are you sure you want to delete this payment? This action cannot be undone. The payment item and any associated invoice documents will be permanently deleted.",
		ConfirmText: "Delete",
		CancelText:  "Cancel",
		Variant:     VariantDanger,
	}, onConfirm, onCancel)
}

// InvalidCharacter builds the blocking notice shown when a text field
// contains a semicolon. Both buttons just close it.
func InvalidCharacter() *Dialog {
	d := New(Options{
		Title:       "Invalid Character",
		Message:     "Semicolon (;) characters are not allowed in any input fields. Please remove them before submitting.",
		ConfirmText: "OK",
		Variant:     VariantPrimary,
	}, nil, nil)
	d.onConfirm = d.Close
	d.onCancel = d.Close
	return d
}
