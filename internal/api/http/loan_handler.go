package http

import (
	"encoding/json"
	"net/http"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type LoanHandler struct {
	loans service.LoanService
}

func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type issueRequest struct {
	BookID int32 `json:"book_id"`
	UserID int32 `json:"user_id"`
}

func (h *LoanHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("request body is not valid JSON"))
		return
	}
	if req.BookID == 0 || req.UserID == 0 {
		writeError(w, domain.NewValidationError("book_id and user_id are required"))
		return
	}
	receipt, err := h.loans.IssueBook(r.Context(), req.BookID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, receipt)
}

type returnRequest struct {
	BookID     int32  `json:"book_id"`
	UserID     int32  `json:"user_id"`
	ReturnDate string `json:"return_date"` // optional, RFC 3339
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("request body is not valid JSON"))
		return
	}
	if req.BookID == 0 || req.UserID == 0 {
		writeError(w, domain.NewValidationError("book_id and user_id are required"))
		return
	}
	var returnedAt *time.Time
	if req.ReturnDate != "" {
		t, err := time.Parse(time.RFC3339, req.ReturnDate)
		if err != nil {
			writeError(w, domain.NewValidationError("return_date must be an RFC 3339 timestamp"))
			return
		}
		returnedAt = &t
	}
	receipt, err := h.loans.ReturnBook(r.Context(), req.BookID, req.UserID, returnedAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, receipt)
}
