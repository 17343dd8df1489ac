package mirror

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Conecyl/internal/auth"
	"Conecyl/internal/ccs"
	"Conecyl/internal/repo"

	"github.com/gorilla/mux"
)

// Handler serves the admin mirror routes. Repo is nil when no database is
// configured.
type Handler struct {
	Repo    repo.Repository
	Catalog *ccs.Catalog
}

type NamesResponse struct {
	Names []string `json:"names"`
}

func (h *Handler) available(w http.ResponseWriter) bool {
	if h.Repo == nil {
		http.Error(w, "Database not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	log.Printf("sync requested by %s", auth.Subject(r.Context()))
	res, err := Sync(r.Context(), h.Repo, h.Catalog)
	if err != nil {
		log.Printf("Sync error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Names lists the identifiers stored in the mirror.
func (h *Handler) Names(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	names, err := h.Repo.Names(r.Context())
	if err != nil {
		log.Printf("Names error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NamesResponse{Names: names})
}

// Get serves one specimen as stored in the mirror.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	name := mux.Vars(r)["name"]
	s, err := h.Repo.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "Specimen not mirrored", http.StatusNotFound)
			return
		}
		log.Printf("Get %s error: %v", name, err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ccs.SpecimenResponse{Name: name, Specimen: s})
}
