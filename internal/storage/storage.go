// Package storage keeps uploaded invoices and category icons on the local
// filesystem. Invoices are stored under generated names; icons keep the
// name they were uploaded with.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
	"financebook/internal/uuid"
	"financebook/internal/validator"
)

const (
	invoiceDir = "invoices"
	iconDir    = "icons"
)

// Store is a directory-backed document store.
type Store struct {
	root    string
	maxSize int64
}

// New creates the invoice and icon directories under root.
func New(root string, maxSize int64) (*Store, error) {
	for _, dir := range []string{invoiceDir, iconDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}
	return &Store{root: root, maxSize: maxSize}, nil
}

// InvoiceName returns the stored name for an invoice of paymentItemID,
// keeping the extension of the uploaded file.
func InvoiceName(paymentItemID uint, original string) string {
	return fmt.Sprintf("%d_%s%s", paymentItemID, uuid.New(), strings.ToLower(filepath.Ext(original)))
}

// DownloadName is the attachment name an invoice is served under.
func DownloadName(paymentItemID uint, stored string) string {
	return fmt.Sprintf("invoice_%d_%s", paymentItemID, stored)
}

// SaveInvoice writes r as a new invoice for paymentItemID and returns the
// stored name.
func (s *Store) SaveInvoice(paymentItemID uint, filename string, r io.Reader) (string, error) {
	if !validator.IsInvoiceExtension(filename) {
		return "", apperrors.ErrInvalidFileType
	}
	name := InvoiceName(paymentItemID, filename)
	if err := s.write(filepath.Join(s.root, invoiceDir, name), r); err != nil {
		return "", err
	}
	return name, nil
}

// InvoicePath resolves a stored invoice name to its path on disk.
func (s *Store) InvoicePath(name string) (string, error) {
	return s.resolve(invoiceDir, name)
}

// DeleteInvoice removes a stored invoice. A missing file is not an error.
func (s *Store) DeleteInvoice(name string) error {
	path, err := s.path(invoiceDir, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("removing invoice %s: %w", name, err))
	}
	return nil
}

// SaveIcon writes r under the base name of filename, replacing any icon of
// the same name, and returns that name.
func (s *Store) SaveIcon(filename string, r io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean("/" + filename))
	if !validator.IsIconExtension(name) {
		return "", apperrors.ErrInvalidFileType
	}
	if err := s.write(filepath.Join(s.root, iconDir, name), r); err != nil {
		return "", err
	}
	return name, nil
}

// IconPath resolves an icon name to its path on disk.
func (s *Store) IconPath(name string) (string, error) {
	return s.resolve(iconDir, name)
}

// path joins name onto dir, rejecting names that would escape it.
func (s *Store) path(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid file name")
	}
	return filepath.Join(s.root, dir, name), nil
}

// resolve is path plus an existence check; missing files are ErrNotFound.
func (s *Store) resolve(dir, name string) (string, error) {
	path, err := s.path(dir, name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if info.IsDir() {
		return "", apperrors.ErrNotFound
	}
	return path, nil
}

// write copies at most maxSize bytes of r into path. An oversized upload
// leaves no file behind.
func (s *Store) write(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("creating %s: %w", path, err))
	}

	limit := s.maxSize
	if limit <= 0 {
		limit = 1<<63 - 2
	}
	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		err = apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("writing %s: %w", path, err))
	case closeErr != nil:
		err = apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("closing %s: %w", path, closeErr))
	case n > limit:
		err = apperrors.ErrFileTooLarge
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Get().Warnw("removing partial upload", "path", path, "error", rmErr)
		}
		return err
	}
	return nil
}
