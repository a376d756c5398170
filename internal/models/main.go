// Package models defines the core data structures for users,
// categories, and transactions, along with the domain errors shared
// across layers.
package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID int64
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}

// Category is a label that groups transactions.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Transaction represents a single spending record.
type Transaction struct {
	// ID is the unique identifier for the transaction.
	ID int64
	// Description is a short free-form note about the spending.
	Description string
	// Amount is the signed monetary amount.
	Amount float64
	// CategoryID references the category this transaction belongs to.
	CategoryID int64
	// Date is the calendar date of the transaction.
	Date time.Time
}

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken indicates a registration with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials indicates a failed login. It covers both an
	// unknown username and a wrong password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")
)
