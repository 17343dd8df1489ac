package geometry

import (
	"encoding/json"
	"errors"
	"net/http"

	"Conecyl/internal/ccs"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *ccs.Catalog
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(mux.Vars(r)["name"])
	if err != nil {
		ccs.WriteLookupError(w, err)
		return
	}
	res, err := Calculate(s)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateBatch(h.Catalog, input)
	if err != nil {
		if errors.Is(err, ccs.ErrUnknownSpecimen) {
			ccs.WriteLookupError(w, err)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
