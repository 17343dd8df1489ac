package units

// MMPerInch is exact by definition.
const MMPerInch = 25.4

// In2mm converts a length given in inches to millimetres.
func In2mm(v float64) float64 {
	return v * MMPerInch
}
