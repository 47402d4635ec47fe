package form

import (
	"mime"
	"path/filepath"
	"strings"

	apperrors "financebook/internal/errors"
	"financebook/internal/validator"
)

// MaxAttachmentSize is the largest invoice accepted.
const MaxAttachmentSize = 25 * 1024 * 1024

// Attachment is a staged invoice file.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewAttachment validates a file before staging it.
func NewAttachment(name string, data []byte) (*Attachment, error) {
	if !validator.IsInvoiceExtension(name) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidFileType,
			"File type not supported. Please upload PDF, DOCX, DOC, or image files.")
	}
	if len(data) > MaxAttachmentSize {
		return nil, apperrors.WithMessage(apperrors.ErrFileTooLarge, "File size exceeds 25MB limit.")
	}

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &Attachment{Name: filepath.Base(name), ContentType: ct, Data: data}, nil
}

// Size returns the file size in bytes.
func (a *Attachment) Size() int {
	return len(a.Data)
}
