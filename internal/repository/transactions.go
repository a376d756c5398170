package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"duitku/internal/models"
)

// SQLiteTransactionRepository implements transaction persistence using a
// SQLite database. Dates are stored as YYYY-MM-DD text.
type SQLiteTransactionRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteTransactionRepository creates a new SQLiteTransactionRepository
// with the given database connection.
func NewSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{DB: db}
}

// GetAll fetches every transaction.
func (r *SQLiteTransactionRepository) GetAll(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, description, amount, category_id, date FROM transactions`,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

// GetByID fetches a single transaction by id.
// Returns models.ErrNotFound if no such transaction exists.
func (r *SQLiteTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := r.DB.QueryRowContext(
		ctx,
		`SELECT id, description, amount, category_id, date FROM transactions WHERE id = ?`,
		id,
	)
	t, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Create inserts a new transaction and returns the generated id.
func (r *SQLiteTransactionRepository) Create(ctx context.Context, t models.Transaction) (int64, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO transactions (description, amount, category_id, date) VALUES (?, ?, ?, ?)`,
		t.Description, t.Amount, t.CategoryID, t.Date.Format(models.DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update overwrites all mutable fields of an existing transaction.
// Returns models.ErrNotFound if no such transaction exists.
func (r *SQLiteTransactionRepository) Update(ctx context.Context, t models.Transaction) error {
	res, err := r.DB.ExecContext(
		ctx,
		`UPDATE transactions SET description = ?, amount = ?, category_id = ?, date = ? WHERE id = ?`,
		t.Description, t.Amount, t.CategoryID, t.Date.Format(models.DateLayout), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a transaction by id.
// Returns models.ErrNotFound if no such transaction exists.
func (r *SQLiteTransactionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// scanTransaction scans one row into a Transaction, parsing the stored
// YYYY-MM-DD date text.
func scanTransaction(scan func(dest ...any) error) (*models.Transaction, error) {
	var t models.Transaction
	var date string
	if err := scan(&t.ID, &t.Description, &t.Amount, &t.CategoryID, &date); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse stored date %q: %w", date, err)
	}
	t.Date = parsed
	return &t, nil
}
