package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"lendingapi/internal/catalog"
	"lendingapi/internal/httpx"
)

type BookHandler struct {
	books catalog.Store
}

func NewBookHandler(books catalog.Store) *BookHandler {
	return &BookHandler{books: books}
}

type createBookRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	Author          string  `json:"author" validate:"required,min=1,max=255"`
	ISBN            string  `json:"isbn" validate:"required,isbn"`
	Price           float64 `json:"price" validate:"gte=0"`
	AvailableCopies int     `json:"available_copies" validate:"gte=0"`
}

// @Summary Add a book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", "request validation failed", details)
		return
	}

	book := catalog.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Price:           req.Price,
		AvailableCopies: req.AvailableCopies,
	}
	if err := h.books.Create(r.Context(), &book); err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusCreated, book)
}

// @Summary Get a book by ISBN
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	const prefix = "/books/"
	isbn := strings.TrimPrefix(r.URL.Path, prefix)
	if isbn == "" || strings.Contains(isbn, "/") {
		http.NotFound(w, r)
		return
	}

	book, err := h.books.GetByISBN(r.Context(), isbn)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, book)
}
