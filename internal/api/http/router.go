package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the API under the /api prefix.
func NewRouter(books *BookHandler, loans *LoanHandler, fines *FineHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog, CORS)

	// Preflight requests are answered by the CORS middleware.
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/books", books.List).Methods(http.MethodGet)
	api.HandleFunc("/books", books.Create).Methods(http.MethodPost)
	api.HandleFunc("/books/{bookId}", books.Get).Methods(http.MethodGet)
	api.HandleFunc("/fines/{userId}", fines.Get).Methods(http.MethodGet)
	api.HandleFunc("/issue", loans.Issue).Methods(http.MethodPost)
	api.HandleFunc("/return", loans.Return).Methods(http.MethodPost)

	return r
}
