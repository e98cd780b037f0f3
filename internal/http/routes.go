package http

import (
	"net/http"

	"lendingapi/internal/httpx"
)

// NewRouter assembles the API surface with the standard middleware
// chain applied.
func NewRouter(books *BookHandler, members *MemberHandler, loans *LoanHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			books.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/books/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			books.GetByISBN(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/members", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			members.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/members/", members.Profile)

	mux.HandleFunc("/loans", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			loans.Borrow(w, r)
		case http.MethodGet:
			loans.ListByMember(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/loans/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			loans.Return(w, r)
		case r.Method == http.MethodGet:
			loans.Get(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	var handler http.Handler = mux
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)
	return handler
}
