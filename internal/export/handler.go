package export

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"Conecyl/internal/ccs"
)

type Handler struct {
	Catalog *ccs.Catalog
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	serve(w, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "specimens.xlsx", func(out io.Writer) error {
		return WriteXLSX(out, h.Catalog)
	})
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	serve(w, "csv", "text/csv", "specimens.csv", func(out io.Writer) error {
		return WriteCSV(out, h.Catalog)
	})
}

// serve renders into memory so a failed export never leaves a partial
// attachment on the wire.
func serve(w http.ResponseWriter, kind, contentType, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		log.Printf("%s export: %v", kind, err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.Write(buf.Bytes())
}
