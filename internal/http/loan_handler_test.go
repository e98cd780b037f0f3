package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendingapi/internal/catalog"
	apphttp "lendingapi/internal/http"
	"lendingapi/internal/lending"
	"lendingapi/internal/loan"
	"lendingapi/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	router  http.Handler
	books   *catalog.MemoryRepo
	members *member.MemoryRepo
	loans   *loan.MemoryRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	books := catalog.NewMemoryRepo()
	members := member.NewMemoryRepo()
	loans := loan.NewMemoryRepo()
	ledger := loan.NewLedger(loans, members, books)
	coord := lending.NewCoordinator(books, ledger)

	router := apphttp.NewRouter(
		apphttp.NewBookHandler(books),
		apphttp.NewMemberHandler(members),
		apphttp.NewLoanHandler(coord, ledger),
	)
	return &env{router: router, books: books, members: members, loans: loans}
}

func (e *env) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (e *env) seed(t *testing.T, copies int) (bookID, memberID string) {
	t.Helper()
	ctx := context.Background()
	b := &catalog.Book{Title: "T", Author: "A", ISBN: "9780134190440", AvailableCopies: copies}
	require.NoError(t, e.books.Create(ctx, b))
	m := &member.Member{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, e.members.CreateMember(ctx, m))
	return b.ID, m.ID
}

func TestLoanHandler_BorrowReturnFlow(t *testing.T) {
	e := newEnv(t)
	bookID, memberID := e.seed(t, 1)

	w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID, "book_id": bookID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	recordID := data["id"].(string)
	assert.Equal(t, "BORROWED", data["status"])

	t.Run("duplicate borrow conflicts", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID, "book_id": bookID})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", errorCode(t, w))
	})

	t.Run("return closes the loan", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans/"+recordID+"/return", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decodeData(t, w)
		assert.Equal(t, "RETURNED", data["status"])
		assert.NotEmpty(t, data["return_date"])
	})

	t.Run("double return conflicts", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans/"+recordID+"/return", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "already_returned", errorCode(t, w))
	})
}

func TestLoanHandler_Borrow_Errors(t *testing.T) {
	e := newEnv(t)
	bookID, memberID := e.seed(t, 0)

	t.Run("out of stock", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID, "book_id": bookID})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "out_of_stock", errorCode(t, w))
	})

	t.Run("unknown member", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": "ghost", "book_id": bookID})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_failed", errorCode(t, w))
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoanHandler_ListByMember(t *testing.T) {
	e := newEnv(t)
	bookID, memberID := e.seed(t, 1)

	w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID, "book_id": bookID})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("lists the member's records", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/loans?member_id="+memberID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, bookID, resp.Data[0]["book_id"])
	})

	t.Run("member_id required", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/loans", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown member yields empty list", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/loans?member_id=ghost", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
	})
}

func TestLoanHandler_Get(t *testing.T) {
	e := newEnv(t)
	bookID, memberID := e.seed(t, 1)

	w := e.do(t, http.MethodPost, "/loans", map[string]string{"member_id": memberID, "book_id": bookID})
	require.Equal(t, http.StatusCreated, w.Code)
	recordID := decodeData(t, w)["id"].(string)

	t.Run("found", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/loans/"+recordID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, recordID, decodeData(t, w)["id"])
	})

	t.Run("not found", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/loans/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
