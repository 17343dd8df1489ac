package ccs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *Catalog
}

type ListResponse struct {
	Names []string `json:"names"`
}

type SpecimenResponse struct {
	Name     string   `json:"name"`
	AliasOf  string   `json:"alias_of,omitempty"`
	Specimen Specimen `json:"specimen"`
}

// List serves all identifiers, the GUI selection with ?gui=1, or the
// entries of one provenance tag with ?database=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var names []string
	switch {
	case q.Get("gui") == "1" || q.Get("gui") == "true":
		names = h.Catalog.DisplayList()
	case q.Get("database") != "":
		names = h.Catalog.ByDatabase(q.Get("database"))
	default:
		names = h.Catalog.Names()
	}
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Names: names})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s, err := h.Catalog.Get(name)
	if err != nil {
		WriteLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SpecimenResponse{
		Name:     name,
		AliasOf:  h.Catalog.aliases[name],
		Specimen: s,
	})
}

// WriteLookupError maps a Catalog.Get error to an HTTP status.
func WriteLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnknownSpecimen) {
		http.Error(w, "unknown specimen", http.StatusNotFound)
		return
	}
	http.Error(w, "lookup error", http.StatusInternalServerError)
}
