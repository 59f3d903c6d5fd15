package http

import (
	"net/http"

	"library-backend/internal/service"
)

type FineHandler struct {
	fines service.FineService
}

func NewFineHandler(fines service.FineService) *FineHandler {
	return &FineHandler{fines: fines}
}

func (h *FineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.fines.GetTotalFines(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, summary)
}
