package export

import (
	"strconv"
	"strings"

	"Conecyl/internal/ccs"

	"gopkg.in/guregu/null.v3"
)

// Row is one catalog entry flattened to text. Empty cells are absent
// parameters; sequences are joined with "/".
type Row struct {
	Name              string `csv:"name"`
	AliasOf           string `csv:"alias_of"`
	RBot              string `csv:"rbot"`
	H                 string `csv:"H"`
	AlphaDeg          string `csv:"alphadeg"`
	ElemType          string `csv:"elem_type"`
	NumelR            string `csv:"numel_r"`
	ElSize            string `csv:"elsize"`
	PlyT              string `csv:"plyt"`
	Stack             string `csv:"stack"`
	LaminapropKey     string `csv:"laminapropKey"`
	AllowablesKey     string `csv:"allowablesKey"`
	AxialDispl        string `csv:"axial_displ"`
	PLoad             string `csv:"pload"`
	PLoads            string `csv:"ploads"`
	ArtificialDamping string `csv:"artificial_damping"`
	DampingFactor     string `csv:"damping_factor"`
	RefLimitDisp      string `csv:"reflimitdisp"`
	RefLimitLoad      string `csv:"reflimitload"`
	Database          string `csv:"database"`
	MSI               string `csv:"msi"`
	TI                string `csv:"ti"`
}

// Header matches the csv tags of Row.
var Header = []string{
	"name", "alias_of", "rbot", "H", "alphadeg", "elem_type", "numel_r", "elsize",
	"plyt", "stack", "laminapropKey", "allowablesKey", "axial_displ", "pload",
	"ploads", "artificial_damping", "damping_factor", "reflimitdisp",
	"reflimitload", "database", "msi", "ti",
}

func (r Row) Values() []string {
	return []string{
		r.Name, r.AliasOf, r.RBot, r.H, r.AlphaDeg, r.ElemType, r.NumelR, r.ElSize,
		r.PlyT, r.Stack, r.LaminapropKey, r.AllowablesKey, r.AxialDispl, r.PLoad,
		r.PLoads, r.ArtificialDamping, r.DampingFactor, r.RefLimitDisp,
		r.RefLimitLoad, r.Database, r.MSI, r.TI,
	}
}

// Rows flattens the catalog in name order.
func Rows(c *ccs.Catalog) ([]Row, error) {
	aliases := c.Aliases()
	names := c.Names()
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		s, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, toRow(name, aliases[name], s))
	}
	return rows, nil
}

func toRow(name, aliasOf string, s ccs.Specimen) Row {
	r := Row{
		Name:          name,
		AliasOf:       aliasOf,
		RBot:          formatFloat(s.RBot),
		H:             formatFloat(s.H),
		AlphaDeg:      formatFloat(s.AlphaDeg),
		ElemType:      s.ElemType.ValueOrZero(),
		ElSize:        formatFloat(s.ElSize),
		PlyT:          formatFloat(s.PlyT),
		Stack:         formatSeq(s.Stack),
		LaminapropKey: s.LaminapropKey.ValueOrZero(),
		AllowablesKey: s.AllowablesKey.ValueOrZero(),
		AxialDispl:    formatFloat(s.AxialDispl),
		PLoad:         formatFloat(s.PLoad),
		PLoads:        formatSeq(s.PLoads),
		DampingFactor: formatFloat(s.DampingFactor),
		RefLimitDisp:  formatFloat(s.RefLimitDisp),
		RefLimitLoad:  formatFloat(s.RefLimitLoad),
		Database:      s.Database.ValueOrZero(),
		MSI:           s.MSI.ValueOrZero(),
		TI:            s.TI.ValueOrZero(),
	}
	if s.NumelR.Valid {
		r.NumelR = strconv.FormatInt(s.NumelR.Int64, 10)
	}
	if s.ArtificialDamping.Valid {
		r.ArtificialDamping = strconv.FormatBool(s.ArtificialDamping.Bool)
	}
	return r
}

func formatFloat(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

func formatSeq(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, "/")
}
