package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// FileField is the multipart field name used by every upload endpoint.
const FileField = "file"

// File is a downloaded document.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadIcon stores an icon file and returns its server-side name.
func (c *Client) UploadIcon(ctx context.Context, filename string, data []byte) (string, error) {
	var result models.UploadResult
	if err := c.upload(ctx, "/uploadicon/", filename, data, &result); err != nil {
		return "", err
	}
	return result.Filename, nil
}

// UploadInvoice attaches an invoice to a payment item, replacing any
// previous one, and returns the updated item.
func (c *Client) UploadInvoice(ctx context.Context, paymentItemID uint, filename string, data []byte) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := c.upload(ctx, idPath("/upload-invoice", paymentItemID), filename, data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteInvoice removes the invoice of a payment item.
func (c *Client) DeleteInvoice(ctx context.Context, paymentItemID uint) error {
	return c.sendJSON(ctx, http.MethodDelete, idPath("/invoice", paymentItemID), nil, nil)
}

// DownloadInvoice fetches the invoice attached to a payment item.
func (c *Client) DownloadInvoice(ctx context.Context, paymentItemID uint) (*File, error) {
	return c.download(ctx, idPath("/download-invoice", paymentItemID))
}

// DownloadStatic fetches a static asset such as a category icon.
func (c *Client) DownloadStatic(ctx context.Context, filename string) (*File, error) {
	return c.download(ctx, "/download_static/"+url.PathEscape(filename))
}

func (c *Client) upload(ctx context.Context, path, filename string, data []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(FileField, filename)
	if err != nil {
		return fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	resp, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        buf.Bytes(),
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) download(ctx context.Context, path string) (*File, error) {
	resp, err := c.send(ctx, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrNetwork, fmt.Errorf("reading %s: %w", path, err))
	}

	f := &File{ContentType: resp.Header.Get("Content-Type"), Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		f.Name = params["filename"]
	}
	return f, nil
}
