package form

import (
	"context"
	"strings"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/validator"
)

// RecipientAPI creates and updates recipients.
type RecipientAPI interface {
	CreateRecipient(ctx context.Context, in models.RecipientInput) (*models.Recipient, error)
	UpdateRecipient(ctx context.Context, id uint, in models.RecipientInput) (*models.Recipient, error)
}

// RecipientAction says what SaveRecipient did.
type RecipientAction int

const (
	RecipientCreated RecipientAction = iota + 1
	RecipientUpdated
	RecipientSelectedExisting
)

// RecipientResult is the recipient the form should now show as selected.
// Message is set when the user must be told why nothing was created.
type RecipientResult struct {
	Action    RecipientAction
	Recipient models.Recipient
	Address   string
	Message   string
}

// SearchRecipients returns recipients whose name starts with term,
// ignoring case. An empty term matches everything.
func SearchRecipients(recipients []models.Recipient, term string) []models.Recipient {
	q := strings.ToLower(strings.TrimSpace(term))
	var out []models.Recipient
	for _, r := range recipients {
		if strings.HasPrefix(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// RecipientModified reports whether the typed values differ from the
// selected recipient, or, with nothing selected, whether anything was
// typed at all.
func RecipientModified(existing []models.Recipient, selectedID *uint, name, address string) bool {
	if selectedID == nil {
		return strings.TrimSpace(name) != "" || strings.TrimSpace(address) != ""
	}
	for _, r := range existing {
		if r.ID == *selectedID {
			return name != r.Name || address != r.AddressOrEmpty()
		}
	}
	return true
}

// SaveRecipient runs the "Add/Update Recipient" action. With a recipient
// selected it updates that recipient. Otherwise a recipient whose
// normalized name matches exactly is selected instead of creating a
// duplicate, and only a new name creates a recipient.
func SaveRecipient(ctx context.Context, api RecipientAPI, existing []models.Recipient, selectedID *uint, name, address string) (RecipientResult, error) {
	sanitized := validator.NormalizeWhitespace(name)
	if sanitized == "" {
		return RecipientResult{}, apperrors.ErrRecipientNameRequired
	}
	if HasSemicolon(name, address) {
		return RecipientResult{}, apperrors.ErrInvalidCharacter
	}
	if err := checkLengths(textFields{RecipientName: sanitized, RecipientAddress: strings.TrimSpace(address)}); err != nil {
		return RecipientResult{}, err
	}

	trimmedAddress := strings.TrimSpace(address)
	in := models.RecipientInput{Name: sanitized}
	if trimmedAddress != "" {
		in.Address = &trimmedAddress
	}

	if selectedID != nil {
		updated, err := api.UpdateRecipient(ctx, *selectedID, in)
		if err != nil {
			return RecipientResult{}, err
		}
		return RecipientResult{Action: RecipientUpdated, Recipient: *updated, Address: updated.AddressOrEmpty()}, nil
	}

	for _, r := range existing {
		if validator.NormalizeWhitespace(r.Name) == sanitized {
			addr := trimmedAddress
			if addr == "" {
				addr = r.AddressOrEmpty()
			}
			return RecipientResult{
				Action:    RecipientSelectedExisting,
				Recipient: r,
				Address:   addr,
				Message:   apperrors.ErrDuplicateRecipient.Message,
			}, nil
		}
	}

	created, err := api.CreateRecipient(ctx, in)
	if err != nil {
		return RecipientResult{}, err
	}
	return RecipientResult{Action: RecipientCreated, Recipient: *created, Address: created.AddressOrEmpty()}, nil
}
