package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"duitku/internal/models"
)

// SQLiteCategoryRepository implements category persistence using a SQLite database.
type SQLiteCategoryRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteCategoryRepository creates a new SQLiteCategoryRepository with the
// given database connection.
func NewSQLiteCategoryRepository(db *sql.DB) *SQLiteCategoryRepository {
	return &SQLiteCategoryRepository{DB: db}
}

// GetAll fetches every category.
func (r *SQLiteCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID fetches a single category by id.
// Returns models.ErrNotFound if no such category exists.
func (r *SQLiteCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, name FROM categories WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create inserts a new category and returns the generated id.
func (r *SQLiteCategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO categories (name) VALUES (?)`,
		name,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update overwrites the name of an existing category.
// Returns models.ErrNotFound if no such category exists.
func (r *SQLiteCategoryRepository) Update(ctx context.Context, id int64, name string) error {
	res, err := r.DB.ExecContext(
		ctx,
		`UPDATE categories SET name = ? WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
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

// Delete removes a category by id.
// Returns models.ErrNotFound if no such category exists.
func (r *SQLiteCategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
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
