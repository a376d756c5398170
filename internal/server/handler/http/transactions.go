package http

import (
	"context"
	"errors"
	"net/http"

	"duitku/internal/models"
	"duitku/internal/money"
)

// TransactionService defines the interface for transaction operations
// required by the HTTP handlers.
type TransactionService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	Create(ctx context.Context, description string, amount float64, categoryID int64, date string) (int64, error)
	Update(ctx context.Context, id int64, description string, amount float64, categoryID int64, date string) error
	Delete(ctx context.Context, id int64) error
}

// TransactionHandler handles HTTP requests for the transaction resource.
type TransactionHandler struct {
	TransactionService TransactionService
}

// transactionRequest represents the JSON payload for creating or updating
// a transaction. Pointer fields distinguish missing fields from zero values.
type transactionRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	CategoryID  *int64   `json:"category_id"`
	Date        *string  `json:"date"`
}

func (req *transactionRequest) validate(w http.ResponseWriter) bool {
	if req.Description == nil || *req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Description is required")
		return false
	}
	if req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, "Amount is required")
		return false
	}
	if req.CategoryID == nil {
		writeMessage(w, http.StatusBadRequest, "Category ID is required")
		return false
	}
	if req.Date == nil || *req.Date == "" {
		writeMessage(w, http.StatusBadRequest, "Date is required (format: YYYY-MM-DD)")
		return false
	}
	return true
}

// transactionListItem is the list-view representation: the amount is
// rendered as a Rupiah currency string for display.
type transactionListItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	CategoryID  int64  `json:"category_id"`
	Date        string `json:"date"`
}

// transactionDetail is the single-item representation with the raw
// numeric amount.
type transactionDetail struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CategoryID  int64   `json:"category_id"`
	Date        string  `json:"date"`
}

// List handles GET /transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.TransactionService.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]transactionListItem, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transactionListItem{
			ID:          t.ID,
			Description: t.Description,
			Amount:      money.FormatIDR(t.Amount),
			CategoryID:  t.CategoryID,
			Date:        t.Date.Format(models.DateLayout),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction not found")
	if !ok {
		return
	}

	t, err := h.TransactionService.Get(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, transactionDetail{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		CategoryID:  t.CategoryID,
		Date:        t.Date.Format(models.DateLayout),
	})
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	_, err := h.TransactionService.Create(r.Context(), *req.Description, *req.Amount, *req.CategoryID, *req.Date)
	if errors.Is(err, models.ErrInvalidDate) {
		writeMessage(w, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD format.")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusCreated, "Transaction created successfully")
}

// Update handles PUT /transactions/{id}.
// A missing transaction wins over a malformed body: the not-found check
// runs before validation.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction not found")
	if !ok {
		return
	}

	if _, err := h.TransactionService.Get(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Transaction not found")
		} else {
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	var req transactionRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	err := h.TransactionService.Update(r.Context(), id, *req.Description, *req.Amount, *req.CategoryID, *req.Date)
	if errors.Is(err, models.ErrInvalidDate) {
		writeMessage(w, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD format.")
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Transaction updated successfully")
}

// Delete handles DELETE /transactions/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction not found")
	if !ok {
		return
	}

	err := h.TransactionService.Delete(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Transaction deleted successfully")
}
