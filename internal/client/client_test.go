package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
	"financebook/internal/models"
)

func init() {
	logger.Init("test")
}

type memTokens struct {
	token   string
	cleared int
}

func (m *memTokens) Token() (string, bool) { return m.token, m.token != "" }
func (m *memTokens) Clear() error {
	m.token = ""
	m.cleared++
	return nil
}

func newTestClient(server *httptest.Server, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(server.Client()), WithRetryBase(time.Millisecond)}, opts...)
	return New(server.URL+"/api/", opts...)
}

func TestListPaymentItems_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payment-items" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("expenseOnly") != "true" {
			t.Errorf("expected expenseOnly=true, got %q", q.Get("expenseOnly"))
		}
		if q.Has("incomeOnly") {
			t.Error("incomeOnly should not be sent")
		}
		if ids := q["categoryIds"]; len(ids) != 2 || ids[0] != "3" || ids[1] != "8" {
			t.Errorf("unexpected categoryIds %v", ids)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"amount":-12.5,"date":"2025-03-01T10:00:00Z","periodic":false,"categories":[]},
			{"id":2,"amount":100,"date":"2025-03-02T10:00:00Z","periodic":true,"transaction_fee":0.01,"categories":[]}]`)
	}))
	defer server.Close()

	c := newTestClient(server, WithTokenSource(&memTokens{token: "tok"}))
	items, err := c.ListPaymentItems(context.Background(), models.PaymentItemFilter{ExpenseOnly: true, CategoryIDs: []uint{3, 8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Amount.Equal(decimal.RequireFromString("-12.5")) || !items[0].IsExpense() {
		t.Errorf("first item mismatch: %+v", items[0])
	}
	if !items[1].HasFee() {
		t.Error("second item should carry a fee")
	}
}

func TestCreatePaymentItem_SendsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["amount"] != -50.0 {
			t.Errorf("expected amount -50 as a number, got %v", body["amount"])
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":9,"amount":-50,"date":"2025-03-01T00:00:00Z","categories":[]}`)
	}))
	defer server.Close()

	c := newTestClient(server)
	item, err := c.CreatePaymentItem(context.Background(), models.PaymentItemInput{
		Amount: decimal.NewFromInt(-50),
		Date:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 9 {
		t.Errorf("expected id 9, got %d", item.ID)
	}
}

func TestClient_DecodesAppError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"error":{"code":"DUPLICATE_RECIPIENT","message":"Recipient name already exists. Select it to update instead."}}`)
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.CreateRecipient(context.Background(), models.RecipientInput{Name: "Jane"})
	if !apperrors.HasCode(err, apperrors.ErrDuplicateRecipient.Code) {
		t.Fatalf("expected DUPLICATE_RECIPIENT, got %v", err)
	}
	if err.Error() != apperrors.ErrDuplicateRecipient.Message {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestClient_NonJSONErrorIsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server, WithMaxRetries(0))
	err := c.DeletePaymentItem(context.Background(), 4)
	if !apperrors.HasCode(err, apperrors.ErrServer.Code) {
		t.Fatalf("expected SERVER_ERROR, got %v", err)
	}
	if !strings.Contains(err.(*apperrors.AppError).Internal.Error(), "unexpected status 502") {
		t.Errorf("internal error should carry the status: %v", err.(*apperrors.AppError).Internal)
	}
}

func TestClient_UnauthorizedPurgesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`)
	}))
	defer server.Close()

	tokens := &memTokens{token: "expired"}
	hooked := 0
	c := newTestClient(server, WithTokenSource(tokens), WithUnauthorizedHandler(func() { hooked++ }))

	_, err := c.Me(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrUnauthorized.Code) {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if tokens.token != "" || tokens.cleared != 1 {
		t.Errorf("token should be cleared once, got %q after %d clears", tokens.token, tokens.cleared)
	}
	if hooked != 1 {
		t.Errorf("expected unauthorized hook once, got %d", hooked)
	}
}

func TestClient_RetriesReadsOnly(t *testing.T) {
	var gets, posts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if gets.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = io.WriteString(w, `[]`)
			return
		}
		posts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(server, WithMaxRetries(3))

	if _, err := c.ListRecipients(context.Background()); err != nil {
		t.Fatalf("read should succeed after retries: %v", err)
	}
	if gets.Load() != 3 {
		t.Errorf("expected 3 GET attempts, got %d", gets.Load())
	}

	if _, err := c.CreateCategoryType(context.Background(), models.CategoryTypeInput{Name: "x"}); err == nil {
		t.Fatal("expected error")
	}
	if posts.Load() != 1 {
		t.Errorf("writes must not be retried, got %d attempts", posts.Load())
	}
}

func TestClient_RetryBudgetExhausted(t *testing.T) {
	var gets atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		gets.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server, WithMaxRetries(2))
	_, err := c.ListCategoryTypes(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrServer.Code) {
		t.Fatalf("expected SERVER_ERROR, got %v", err)
	}
	if gets.Load() != 3 {
		t.Errorf("expected 1 attempt + 2 retries, got %d", gets.Load())
	}
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	c := New(server.URL, WithTimeout(20*time.Millisecond), WithMaxRetries(0))
	_, err := c.GetPaymentItem(context.Background(), 1)
	if !apperrors.HasCode(err, apperrors.ErrNetwork.Code) {
		t.Fatalf("expected NETWORK_ERROR, got %v", err)
	}
}

func TestLogin_FormEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		if r.PostForm.Get("username") != "anna" || r.PostForm.Get("password") != "secret123" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		_, _ = io.WriteString(w, `{"access_token":"abc","token_type":"bearer"}`)
	}))
	defer server.Close()

	c := newTestClient(server)
	tok, err := c.Login(context.Background(), "anna", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "abc" || tok.TokenType != "bearer" {
		t.Errorf("unexpected token %+v", tok)
	}
}

func TestUploadInvoice_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload-invoice/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		file, header, err := r.FormFile(FileField)
		if err != nil {
			t.Fatalf("reading form file: %v", err)
		}
		defer func() { _ = file.Close() }()
		data, _ := io.ReadAll(file)
		if header.Filename != "bill.pdf" || string(data) != "%PDF-1.4" {
			t.Errorf("unexpected upload %q %q", header.Filename, data)
		}
		_, _ = io.WriteString(w, `{"id":7,"amount":-3,"date":"2025-03-01T00:00:00Z","invoice_path":"x.pdf","categories":[]}`)
	}))
	defer server.Close()

	c := newTestClient(server)
	item, err := c.UploadInvoice(context.Background(), 7, "bill.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.HasInvoice() {
		t.Error("returned item should have an invoice")
	}
}

func TestDownloadInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="invoice_7_bill.pdf"`)
		_, _ = io.WriteString(w, "%PDF")
	}))
	defer server.Close()

	c := newTestClient(server)
	f, err := c.DownloadInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "invoice_7_bill.pdf" || f.ContentType != "application/pdf" || string(f.Data) != "%PDF" {
		t.Errorf("unexpected file %+v", f)
	}
}

func TestCategoryPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/tree") || r.Method == http.MethodPut || r.URL.Path == "/api/categories/5" {
			_, _ = io.WriteString(w, `{"id":5,"name":"Food","type_id":1}`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	defer server.Close()

	ctx := context.Background()
	c := newTestClient(server)
	_, _ = c.GetCategory(ctx, 5)
	_, _ = c.GetCategoryTree(ctx, 5)
	_, _ = c.GetCategoryDescendants(ctx, 5)
	_, _ = c.ListCategoriesByType(ctx, 2)
	name := "Groceries"
	_, _ = c.UpdateCategory(ctx, 5, models.CategoryUpdate{Name: &name})

	want := []string{
		"GET /api/categories/5",
		"GET /api/categories/5/tree",
		"GET /api/categories/5/descendants",
		"GET /api/categories/by-type/2",
		"PUT /api/categories/5",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, paths[i], want[i])
		}
	}
}
