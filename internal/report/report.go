package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"Conecyl/internal/ccs"
	"Conecyl/internal/geometry"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Name     string
	AliasOf  string
	Specimen ccs.Specimen
	Date     time.Time
}

// Write renders a one-page datasheet: the catalog parameters followed by the
// derived geometry when it can be computed.
func Write(w io.Writer, in Input) error {
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Specimen "+in.Name, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Specimen datasheet: "+in.Name)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(6)
	if in.AliasOf != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Same record as: %s", in.AliasOf))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, "Parameters")
	for _, f := range in.Specimen.Fields() {
		row(pdf, f.Name, formatValue(f.Value))
	}

	if g, err := geometry.Calculate(in.Specimen); err == nil {
		pdf.Ln(6)
		section(pdf, "Derived geometry")
		row(pdf, "shape", g.Kind)
		row(pdf, "rtop [mm]", fmtF(g.RTopMM))
		row(pdf, "slant length [mm]", fmtF(g.SlantLengthMM))
		row(pdf, "plies", strconv.Itoa(g.PlyCount))
		if g.ThicknessMM > 0 {
			row(pdf, "thickness [mm]", fmtF(g.ThicknessMM))
			row(pdf, "R/t", fmtF(g.RadiusToThickness))
		}
		if g.NumelR > 0 {
			row(pdf, "mesh", fmt.Sprintf("%d x %d", g.NumelR, g.NumelH))
		}
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, name, value string) {
	pdf.CellFormat(55, 6, name, "1", 0, "L", false, 0, "")
	pdf.MultiCell(0, 6, value, "1", "L", false)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmtF(x)
	case []float64:
		parts := make([]string, len(x))
		for i, p := range x {
			parts[i] = fmtF(p)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(x)
	}
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
