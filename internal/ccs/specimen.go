package ccs

import (
	"encoding/json"
	"reflect"
	"slices"

	"gopkg.in/guregu/null.v3"
)

// Specimen holds the geometric, material, loading and meshing parameters of
// one shell buckling-test article. Absent parameters are invalid null values
// or nil slices.
type Specimen struct {
	RBot              null.Float  `json:"rbot"`
	H                 null.Float  `json:"H"`
	AlphaDeg          null.Float  `json:"alphadeg"`
	ElemType          null.String `json:"elem_type"`
	NumelR            null.Int    `json:"numel_r"`
	ElSize            null.Float  `json:"elsize"`
	PlyT              null.Float  `json:"plyt"`
	Stack             []float64   `json:"stack"`
	LaminapropKey     null.String `json:"laminapropKey"`
	AllowablesKey     null.String `json:"allowablesKey"`
	AxialDispl        null.Float  `json:"axial_displ"`
	PLoad             null.Float  `json:"pload"`
	PLoads            []float64   `json:"ploads"`
	ArtificialDamping null.Bool   `json:"artificial_damping"`
	DampingFactor     null.Float  `json:"damping_factor"`
	RefLimitDisp      null.Float  `json:"reflimitdisp"`
	RefLimitLoad      null.Float  `json:"reflimitload"`
	Database          null.String `json:"database"`
	MSI               null.String `json:"msi"`
	TI                null.String `json:"ti"`
}

// Field is one present parameter of a Specimen.
type Field struct {
	Name  string
	Value any
}

// Fields lists the present parameters in a stable order.
func (s Specimen) Fields() []Field {
	var out []Field
	addF := func(name string, v null.Float) {
		if v.Valid {
			out = append(out, Field{name, v.Float64})
		}
	}
	addS := func(name string, v null.String) {
		if v.Valid {
			out = append(out, Field{name, v.String})
		}
	}
	addSeq := func(name string, v []float64) {
		if v != nil {
			out = append(out, Field{name, slices.Clone(v)})
		}
	}

	addF("rbot", s.RBot)
	addF("H", s.H)
	addF("alphadeg", s.AlphaDeg)
	addS("elem_type", s.ElemType)
	if s.NumelR.Valid {
		out = append(out, Field{"numel_r", s.NumelR.Int64})
	}
	addF("elsize", s.ElSize)
	addF("plyt", s.PlyT)
	addSeq("stack", s.Stack)
	addS("laminapropKey", s.LaminapropKey)
	addS("allowablesKey", s.AllowablesKey)
	addF("axial_displ", s.AxialDispl)
	addF("pload", s.PLoad)
	addSeq("ploads", s.PLoads)
	if s.ArtificialDamping.Valid {
		out = append(out, Field{"artificial_damping", s.ArtificialDamping.Bool})
	}
	addF("damping_factor", s.DampingFactor)
	addF("reflimitdisp", s.RefLimitDisp)
	addF("reflimitload", s.RefLimitLoad)
	addS("database", s.Database)
	addS("msi", s.MSI)
	addS("ti", s.TI)
	return out
}

// MarshalJSON writes only the present parameters, keyed by parameter name.
func (s Specimen) MarshalJSON() ([]byte, error) {
	fields := s.Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return json.Marshal(m)
}

// Clone returns a deep copy.
func (s Specimen) Clone() Specimen {
	c := s
	c.Stack = slices.Clone(s.Stack)
	c.PLoads = slices.Clone(s.PLoads)
	return c
}

// Equal reports field-by-field equality. Stacking order and sign matter.
func (s Specimen) Equal(o Specimen) bool {
	return reflect.DeepEqual(s, o)
}

// IsCone reports whether the specimen has a non-zero semi-vertex angle.
func (s Specimen) IsCone() bool {
	return s.AlphaDeg.Valid && s.AlphaDeg.Float64 != 0
}
