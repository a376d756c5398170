package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"duitku/internal/models"
)

// CategoryService defines the interface for category operations required
// by the HTTP handlers.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// CategoryHandler handles HTTP requests for the category resource.
type CategoryHandler struct {
	CategoryService CategoryService
}

type categoryRequest struct {
	Name *string `json:"name"`
}

func (req *categoryRequest) validate(w http.ResponseWriter) bool {
	if req.Name == nil || *req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Name is required")
		return false
	}
	return true
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}

	category, err := h.CategoryService.Get(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	if _, err := h.CategoryService.Create(r.Context(), *req.Name); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusCreated, "Category created successfully")
}

// Update handles PUT /categories/{id}.
// A missing category wins over a malformed body: the not-found check runs
// before validation.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}

	if _, err := h.CategoryService.Get(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Category not found")
		} else {
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	var req categoryRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	if err := h.CategoryService.Update(r.Context(), id, *req.Name); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Category not found")
		} else {
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeMessage(w, http.StatusOK, "Category updated successfully")
}

// Delete handles DELETE /categories/{id}.
// Transactions referencing the category are left untouched.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}

	err := h.CategoryService.Delete(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Category deleted successfully")
}

// pathID parses the {id} route parameter. A non-numeric id behaves like a
// missing record and replies 404 with notFoundMsg.
func pathID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, notFoundMsg)
		return 0, false
	}
	return id, true
}
