package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"duitku/internal/models"
	"duitku/internal/service"
	"duitku/internal/token"
)

// memTransactionRepo is an in-memory service.TransactionRepository.
type memTransactionRepo struct {
	nextID int64
	items  map[int64]models.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{items: make(map[int64]models.Transaction)}
}

func (m *memTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range m.items {
		out = append(out, t)
	}
	return out, nil
}

func (m *memTransactionRepo) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &t, nil
}

func (m *memTransactionRepo) Create(ctx context.Context, t models.Transaction) (int64, error) {
	m.nextID++
	t.ID = m.nextID
	m.items[t.ID] = t
	return t.ID, nil
}

func (m *memTransactionRepo) Update(ctx context.Context, t models.Transaction) error {
	if _, ok := m.items[t.ID]; !ok {
		return models.ErrNotFound
	}
	m.items[t.ID] = t
	return nil
}

func (m *memTransactionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// memCategoryRepo is an in-memory service.CategoryRepository.
type memCategoryRepo struct {
	nextID int64
	items  map[int64]models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[int64]models.Category)}
}

func (m *memCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (m *memCategoryRepo) Create(ctx context.Context, name string) (int64, error) {
	m.nextID++
	m.items[m.nextID] = models.Category{ID: m.nextID, Name: name}
	return m.nextID, nil
}

func (m *memCategoryRepo) Update(ctx context.Context, id int64, name string) error {
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	m.items[id] = models.Category{ID: id, Name: name}
	return nil
}

func (m *memCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// newTestServer wires the real services and token manager over in-memory
// repositories and returns the router plus a valid Authorization header.
func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	tokens := token.NewManager("test-secret", time.Hour)
	authHandler := &AuthHandler{AuthService: &fakeAuthService{}, Tokens: tokens}
	transactionHandler := &TransactionHandler{
		TransactionService: service.NewTransactionService(newMemTransactionRepo()),
	}
	categoryHandler := &CategoryHandler{
		CategoryService: service.NewCategoryService(newMemCategoryRepo()),
	}

	router := NewRouter(authHandler, transactionHandler, categoryHandler, tokens, zap.NewNop())

	signed, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return router, "Bearer " + signed
}

func doRequest(t *testing.T, router http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTransactions_RequireToken(t *testing.T) {
	router, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/transactions"},
		{"GET", "/transactions/1"},
		{"DELETE", "/transactions/1"},
		{"GET", "/categories"},
	}
	for _, p := range paths {
		rec := doRequest(t, router, p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", p.method, p.path, rec.Code)
		}
	}
}

func TestTransactions_CreateThenGetRoundtrip(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "POST", "/transactions", auth,
		`{"description":"Makan siang","amount":15000.0,"category_id":2,"date":"2024-05-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, "GET", "/transactions/1", auth, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		ID          int64   `json:"id"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		CategoryID  int64   `json:"category_id"`
		Date        string  `json:"date"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Description != "Makan siang" || got.Amount != 15000.0 || got.CategoryID != 2 || got.Date != "2024-05-01" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestTransactions_ListFormatsCurrency(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "POST", "/transactions", auth,
		`{"description":"Makan siang","amount":15000.0,"category_id":2,"date":"2024-05-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = doRequest(t, router, "GET", "/transactions", auth, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []struct {
		Amount string `json:"amount"`
		Date   string `json:"date"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	// The list view renders the stored 15000.0 as a Rupiah string.
	if items[0].Amount != "Rp15.000,00" {
		t.Errorf("expected formatted amount Rp15.000,00, got %q", items[0].Amount)
	}
	if items[0].Date != "2024-05-01" {
		t.Errorf("expected date 2024-05-01, got %q", items[0].Date)
	}
}

func TestTransactions_CreateInvalidDate(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "POST", "/transactions", auth,
		`{"description":"x","amount":1.0,"category_id":1,"date":"2024-13-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Invalid date format")) {
		t.Errorf("expected invalid-date message, got %s", rec.Body.String())
	}
}

func TestTransactions_CreateMissingField(t *testing.T) {
	router, auth := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing description", `{"amount":1.0,"category_id":1,"date":"2024-05-01"}`, "Description is required"},
		{"missing amount", `{"description":"x","category_id":1,"date":"2024-05-01"}`, "Amount is required"},
		{"missing category", `{"description":"x","amount":1.0,"date":"2024-05-01"}`, "Category ID is required"},
		{"missing date", `{"description":"x","amount":1.0,"category_id":1}`, "Date is required (format: YYYY-MM-DD)"},
		{"string amount", `{"description":"x","amount":"1","category_id":1,"date":"2024-05-01"}`, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, "POST", "/transactions", auth, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.want)) {
				t.Errorf("expected body to contain %q, got %s", tt.want, rec.Body.String())
			}
		})
	}
}

func TestTransactions_UpdateNotFound(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "PUT", "/transactions/99", auth,
		`{"description":"x","amount":1.0,"category_id":1,"date":"2024-05-01"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// The failed update must not create the record.
	rec = doRequest(t, router, "GET", "/transactions/99", auth, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after failed update, got %d", rec.Code)
	}
}

func TestTransactions_Update(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "POST", "/transactions", auth,
		`{"description":"Makan siang","amount":15000.0,"category_id":2,"date":"2024-05-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = doRequest(t, router, "PUT", "/transactions/1", auth,
		`{"description":"Makan malam","amount":25000.0,"category_id":3,"date":"2024-05-02"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, "GET", "/transactions/1", auth, "")
	var got struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		CategoryID  int64   `json:"category_id"`
		Date        string  `json:"date"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Description != "Makan malam" || got.Amount != 25000.0 || got.CategoryID != 3 || got.Date != "2024-05-02" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestTransactions_DeleteTwice(t *testing.T) {
	router, auth := newTestServer(t)

	rec := doRequest(t, router, "POST", "/transactions", auth,
		`{"description":"x","amount":1.0,"category_id":1,"date":"2024-05-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = doRequest(t, router, "DELETE", "/transactions/1", auth, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, "DELETE", "/transactions/1", auth, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}
