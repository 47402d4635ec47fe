package form

import (
	"context"
	"errors"

	"financebook/internal/dialog"
	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// Form is the full editing state: the draft plus the recipient and new
// category inputs, the staged attachment, the message line and the
// invalid-character notice.
type Form struct {
	Draft Draft

	RecipientName    string
	RecipientAddress string
	NewCategoryName  string

	Attachment *Attachment
	Error      string

	semicolon *dialog.Dialog
}

// New creates a form for d.
func New(d Draft) *Form {
	return &Form{Draft: d, semicolon: dialog.InvalidCharacter()}
}

// SemicolonDialog returns the invalid-character notice.
func (f *Form) SemicolonDialog() *dialog.Dialog {
	return f.semicolon
}

// SelectRecipient selects r, or clears the selection when r is nil.
func (f *Form) SelectRecipient(r *models.Recipient) {
	if r == nil {
		f.Draft.RecipientID = nil
		f.RecipientName, f.RecipientAddress = "", ""
		return
	}
	id := r.ID
	f.Draft.RecipientID = &id
	f.RecipientName = r.Name
	f.RecipientAddress = r.AddressOrEmpty()
}

// SelectCategory selects c, or clears the selection when c is nil.
func (f *Form) SelectCategory(c *models.Category) {
	if c == nil {
		f.Draft.CategoryID = nil
		return
	}
	id := c.ID
	f.Draft.CategoryID = &id
}

// Stage validates and stages a file. A rejected file leaves any previously
// staged file in place.
func (f *Form) Stage(name string, data []byte) error {
	att, err := NewAttachment(name, data)
	if err != nil {
		f.Error = err.Error()
		return err
	}
	f.Attachment = att
	f.Error = ""
	return nil
}

// Validate checks the inputs in submit order: semicolons first (opening
// the notice), then lengths, then the amount.
func (f *Form) Validate() error {
	if HasSemicolon(f.Draft.Description, f.RecipientName, f.RecipientAddress, f.NewCategoryName) {
		f.semicolon.Open()
		return apperrors.ErrInvalidCharacter
	}
	if err := checkLengths(textFields{
		Description:      f.Draft.Description,
		RecipientName:    f.RecipientName,
		RecipientAddress: f.RecipientAddress,
		NewCategoryName:  f.NewCategoryName,
	}); err != nil {
		f.Error = err.Error()
		return err
	}
	if _, err := f.Draft.ParseAmount(); err != nil {
		f.Error = err.Error()
		return err
	}
	return nil
}

// Submit validates and runs the saga. The message line is updated from
// the outcome; a fully successful submission also clears the staged file.
func (f *Form) Submit(ctx context.Context, saga *Saga, onProgress ProgressFunc) Outcome {
	f.Error = ""
	if err := f.Validate(); err != nil {
		return Outcome{Status: StatusInvalid, Message: err.Error(), Err: err}
	}

	out := saga.Run(ctx, f.Draft, f.Attachment, onProgress)
	f.Error = out.Message
	switch out.Status {
	case StatusSucceeded:
		f.Attachment = nil
	case StatusPartial:
		// The item exists now; later submissions must update it.
		if !f.Draft.IsEdit() && out.Item != nil {
			id := out.Item.ID
			f.Draft.ID = &id
			f.Draft.OriginalDate = out.Item.Date
		}
	}
	return out
}

// AddRecipient runs the recipient sub-protocol and applies its result.
func (f *Form) AddRecipient(ctx context.Context, api RecipientAPI, existing []models.Recipient) error {
	res, err := SaveRecipient(ctx, api, existing, f.Draft.RecipientID, f.RecipientName, f.RecipientAddress)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCharacter) {
			f.semicolon.Open()
		} else {
			f.Error = err.Error()
		}
		return err
	}

	id := res.Recipient.ID
	f.Draft.RecipientID = &id
	f.RecipientName = res.Recipient.Name
	f.RecipientAddress = res.Address
	f.Error = res.Message
	return nil
}

// AddCategory runs the category sub-protocol and applies its result.
func (f *Form) AddCategory(ctx context.Context, api CategoryAPI, available []models.Category, typeID uint) error {
	res, err := AddCategory(ctx, api, available, typeID, f.NewCategoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCharacter) {
			f.semicolon.Open()
		} else {
			f.Error = err.Error()
		}
		return err
	}

	f.SelectCategory(&res.Category)
	f.NewCategoryName = ""
	f.Error = res.Message
	return nil
}
