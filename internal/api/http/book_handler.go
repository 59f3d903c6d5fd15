package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	catalog service.CatalogService
}

func NewBookHandler(catalog service.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	writeData(w, http.StatusOK, books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "bookId")
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.catalog.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, detail)
}

type addBookRequest struct {
	Title           string  `json:"title"`
	AuthorID        int32   `json:"author_id"`
	PublisherID     int32   `json:"publisher_id"`
	CategoryID      int32   `json:"category_id"`
	ISBN            *string `json:"isbn"`
	PublicationYear int32   `json:"publication_year"`
	CopiesAvailable int32   `json:"copies_available"`
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("request body is not valid JSON"))
		return
	}
	book := &domain.Book{
		Title:           req.Title,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		CopiesAvailable: req.CopiesAvailable,
	}
	id, err := h.catalog.AddBook(r.Context(), book)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int32{"book_id": id}, "Book added successfully")
}

// pathID parses a positive int32 path variable.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name + " must be a positive integer")
	}
	return int32(id), nil
}
