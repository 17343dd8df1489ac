package geometry

import (
	"errors"
	"math"

	"Conecyl/internal/ccs"
)

var ErrIncomplete = errors.New("geometry: rbot and H are required")

type Result struct {
	Kind              string  `json:"kind"` // cylinder or cone
	AlphaRad          float64 `json:"alpha_rad"`
	RTopMM            float64 `json:"rtop_mm"`
	SlantLengthMM     float64 `json:"slant_length_mm"`
	PlyCount          int     `json:"ply_count"`
	ThicknessMM       float64 `json:"thickness_mm,omitempty"`
	RadiusToThickness float64 `json:"r_over_t,omitempty"`
	NumelR            int     `json:"numel_r,omitempty"`
	NumelH            int     `json:"numel_h,omitempty"`
	Notes             string  `json:"notes"`
}

func Calculate(s ccs.Specimen) (Result, error) {
	if !s.RBot.Valid || !s.H.Valid || s.RBot.Float64 <= 0 || s.H.Float64 <= 0 {
		return Result{}, ErrIncomplete
	}
	rbot, h := s.RBot.Float64, s.H.Float64

	res := Result{Kind: "cylinder", RTopMM: rbot, SlantLengthMM: h, PlyCount: len(s.Stack)}
	if s.IsCone() {
		res.Kind = "cone"
		res.AlphaRad = s.AlphaDeg.Float64 * math.Pi / 180.0
		res.RTopMM = rbot - h*math.Tan(res.AlphaRad)
		res.SlantLengthMM = h / math.Cos(res.AlphaRad)
	}

	if s.PlyT.Valid && len(s.Stack) > 0 {
		res.ThicknessMM = s.PlyT.Float64 * float64(len(s.Stack))
		res.RadiusToThickness = rbot / res.ThicknessMM
	}

	// Mesh density: numel_r wins over elsize.
	circ := 2 * math.Pi * rbot
	switch {
	case s.NumelR.Valid && s.NumelR.Int64 > 0:
		res.NumelR = int(s.NumelR.Int64)
	case s.ElSize.Valid && s.ElSize.Float64 > 0:
		res.NumelR = int(math.Round(circ / s.ElSize.Float64))
	}
	if res.NumelR > 0 {
		res.NumelH = int(math.Round(float64(res.NumelR) * res.SlantLengthMM / circ))
	}

	res.Notes = "Nominal geometry from catalog parameters."
	return res, nil
}
