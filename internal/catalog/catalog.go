package catalog

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrOutOfStock is returned when a copy-counter adjustment would make
// available_copies negative.
var ErrOutOfStock = errors.New("no copies available")

// ErrISBNTaken is returned when creating a book with an ISBN that is
// already in the catalog.
var ErrISBNTaken = errors.New("isbn already registered")

// ErrInvalidISBN is returned when an ISBN is not 10 or 13 digits after
// normalization.
var ErrInvalidISBN = errors.New("isbn must be 10 or 13 digits")

// Book represents a book entity with its lendable copy count.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Price           float64   `json:"price"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

var isbnDigits = regexp.MustCompile(`^(?:\d{10}|\d{13})$`)

// NormalizeISBN strips hyphens and spaces and checks that the remainder
// is exactly 10 or 13 digits. The normalized form is what gets stored
// and looked up, so "978-0-123456-78-6" and "9780123456786" are the
// same book.
func NormalizeISBN(raw string) (string, error) {
	s := strings.ReplaceAll(raw, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	if !isbnDigits.MatchString(s) {
		return "", ErrInvalidISBN
	}
	return s, nil
}
