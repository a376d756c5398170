package service

import (
	"context"
	"time"

	"duitku/internal/models"
)

// TransactionRepository defines the persistence operations required by the
// transaction service.
type TransactionRepository interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	Create(ctx context.Context, t models.Transaction) (int64, error)
	Update(ctx context.Context, t models.Transaction) error
	Delete(ctx context.Context, id int64) error
}

// TransactionService implements transaction operations by delegating to a
// TransactionRepository. Incoming date strings are validated here.
type TransactionService struct {
	repo TransactionRepository
}

// NewTransactionService constructs a new TransactionService using the
// provided repository.
func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// List returns every transaction.
func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a single transaction by id.
func (s *TransactionService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the date string, stores a new transaction, and returns
// its id. Returns models.ErrInvalidDate if date is not YYYY-MM-DD.
// The category id is not checked against existing categories.
func (s *TransactionService) Create(ctx context.Context, description string, amount float64, categoryID int64, date string) (int64, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, models.Transaction{
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        parsed,
	})
}

// Update validates the date string and overwrites all mutable fields of an
// existing transaction. Returns models.ErrInvalidDate for a bad date and
// models.ErrNotFound if no such transaction exists.
func (s *TransactionService) Update(ctx context.Context, id int64, description string, amount float64, categoryID int64, date string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	parsed, err := parseDate(date)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, models.Transaction{
		ID:          id,
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        parsed,
	})
}

// Delete removes a transaction by id.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return time.Time{}, models.ErrInvalidDate
	}
	return parsed, nil
}
