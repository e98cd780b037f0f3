package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookHandler_Create(t *testing.T) {
	e := newEnv(t)

	t.Run("creates and normalizes isbn", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/books", map[string]interface{}{
			"title":            "The Go Programming Language",
			"author":           "Donovan",
			"isbn":             "978-0-13-419044-0",
			"price":            32.5,
			"available_copies": 3,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		data := decodeData(t, w)
		assert.Equal(t, "9780134190440", data["isbn"])
	})

	t.Run("duplicate isbn conflicts", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/books", map[string]interface{}{
			"title":            "Another",
			"author":           "Writer",
			"isbn":             "9780134190440",
			"available_copies": 1,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid isbn rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/books", map[string]interface{}{
			"title":  "Bad",
			"author": "Writer",
			"isbn":   "not-an-isbn",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("negative copies rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/books", map[string]interface{}{
			"title":            "Bad",
			"author":           "Writer",
			"isbn":             "9780134190441",
			"available_copies": -1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestBookHandler_GetByISBN(t *testing.T) {
	e := newEnv(t)
	bookID, _ := e.seed(t, 2)

	t.Run("hyphenated lookup finds the same book", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/books/978-0-13-419044-0", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, bookID, decodeData(t, w)["id"])
	})

	t.Run("unknown isbn", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/books/9999999999999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMemberHandler_ProfileFlow(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/members", map[string]string{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	memberID := decodeData(t, w)["id"].(string)

	t.Run("create profile", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/members/"+memberID+"/profile", map[string]string{
			"address": "1 Main St", "phone": "+1 555-0100",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("second profile conflicts", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/members/"+memberID+"/profile", map[string]string{
			"address": "2 Oak Ave", "phone": "+1 555-0101",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("phone uniqueness enforced", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/members", map[string]string{"name": "Bob", "email": "bob@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		bobID := decodeData(t, w)["id"].(string)

		w = e.do(t, http.MethodPost, "/members/"+bobID+"/profile", map[string]string{
			"address": "3 Elm Rd", "phone": "+1 555-0100",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid phone rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/members/"+memberID+"/profile", map[string]string{
			"address": "1 Main St", "phone": "nope",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("get profile", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/members/"+memberID+"/profile", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "+1 555-0100", decodeData(t, w)["phone"])
	})
}
