package handlers

import (
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/services"
)

type mockImportService struct {
	importFn func(userID uint, r io.Reader) (*models.ImportResult, error)
}

var _ services.ImportServicer = (*mockImportService)(nil)

func (m *mockImportService) ImportCSV(userID uint, r io.Reader) (*models.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(userID, r)
	}
	return &models.ImportResult{}, nil
}

func setupImportRouter(svc services.ImportServicer, audit services.AuditServicer) *gin.Engine {
	h := NewImportHandler(svc, audit)
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/import-csv", h.ImportCSV)
	return r
}

func TestImportHandler_ImportCSV(t *testing.T) {
	t.Run("returns the counts and audits", func(t *testing.T) {
		var got string
		svc := &mockImportService{
			importFn: func(_ uint, r io.Reader) (*models.ImportResult, error) {
				data, _ := io.ReadAll(r)
				got = string(data)
				return &models.ImportResult{CreatedPayments: 2, CreatedRecipients: 1}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupImportRouter(svc, audit)

		body := "amount;date;description;Recipient name;Recipient address;standard_category name;periodic\n"
		rec := doUpload(t, r, "/import-csv", "export.csv", body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got != body {
			t.Errorf("service received %q", got)
		}
		result := parseJSON(t, rec)
		if result["created_payments"] != float64(2) || result["created_recipients"] != float64(1) {
			t.Errorf("unexpected result %v", result)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "IMPORT payment_item" {
			t.Errorf("unexpected audit entries %v", audit.actions)
		}
	})

	t.Run("returns 400 for a malformed file", func(t *testing.T) {
		svc := &mockImportService{
			importFn: func(_ uint, _ io.Reader) (*models.ImportResult, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "line 2: invalid amount")
			},
		}
		audit := &mockAuditService{}
		r := setupImportRouter(svc, audit)

		rec := doUpload(t, r, "/import-csv", "export.csv", "broken")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if len(audit.actions) != 0 {
			t.Errorf("expected no audit entries, got %v", audit.actions)
		}
	})

	t.Run("requires a file", func(t *testing.T) {
		r := setupImportRouter(&mockImportService{}, &mockAuditService{})

		rec := doRequest(r, "POST", "/import-csv", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
