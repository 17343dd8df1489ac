package report

import (
	"bytes"
	"log"
	"net/http"

	"Conecyl/internal/ccs"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *ccs.Catalog
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s, err := h.Catalog.Get(name)
	if err != nil {
		ccs.WriteLookupError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, Input{Name: name, AliasOf: h.Catalog.Aliases()[name], Specimen: s}); err != nil {
		log.Printf("report %s: %v", name, err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+".pdf\"")
	w.Write(buf.Bytes())
}
