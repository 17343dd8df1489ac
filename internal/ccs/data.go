package ccs

import (
	"math"

	"Conecyl/internal/units"

	"gopkg.in/guregu/null.v3"
)

// alias copies the record of Source under Name once every literal entry
// exists.
type alias struct {
	Name   string
	Source string
}

var aliases = []alias{
	{Name: "wp2_pfh_des_01", Source: "astrium_1_less_3x0_plies"},
	{Name: "wp2_pfh_des_02", Source: "astrium_3_7a_original"},
	{Name: "castro_2014_c02", Source: "astrium_3_7a_original"},
	{Name: "desicos_2014_z37", Source: "desicos_2014_z36"},
}

// guiSelection is the hand-maintained list of specimens offered by the
// graphical front end. Every key containing hilburgerTag is added to it.
var guiSelection = []string{
	"desicos_2014_z36",
	"desicos_2014_c17",
	"desicos_2014_c18",
	"wp2_pfh_des_01",
	"wp2_pfh_des_02",
	"wp2_dlr_des_01",
	"wp2_dlr_des_02",
	"efre_2014_r04",
	"efre_2014_r05",
	"efre_2014_r07",
	"efre_2014_r08",
	"efre_2014_r09",
	"afp",
	"zimmermann_1992_z32",
	"zimmermann_1992_z33",
	"huehne_2002_z14",
	"huehne_2002_z22",
	"huehne_2002_z24",
	"huehne_2002_z27",
	"huehne_2002_z30",
	"huehne_2002_z33",
	"huehne_2008_z07",
	"degenhardt_2010_z15",
	"degenhardt_2010_z17",
	"degenhardt_2010_z18",
	"degenhardt_2010_z20",
	"degenhardt_2010_z21",
	"degenhardt_2010_z22",
	"degenhardt_2010_z23",
	"degenhardt_2010_z24",
	"degenhardt_2010_z25",
	"degenhardt_2010_z26",
	"geier_1991_z11",
	"geier_1991_z12",
	"geier_1991_z14",
	"geier_1991_z17",
	"geier_1991_z18",
	"geier_1991_z21",
	"geier_1991_z22",
	"dinkler_2010",
}

const hilburgerTag = "hilburger"

// literalSpecimens returns a fresh map of every directly defined specimen.
// Lengths are in millimetres; the NASA entries are given in inches and
// converted here.
func literalSpecimens() map[string]Specimen {
	f, i, s := null.FloatFrom, null.IntFrom, null.StringFrom
	return map[string]Specimen{
		"astrium_des1": {
			RBot:          f(2702.5),
			H:             f(2064),
			AlphaDeg:      f(41.28796038),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("mat_huehne_2008"),
			AxialDispl:    f(0.5),
			PLoad:         f(10),
			Database:      s("desicos"),
		},
		"astrium_des2": {
			RBot:          f(1968),
			H:             f(783),
			AlphaDeg:      f(39.9563869),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("mat_huehne_2008"),
			AxialDispl:    f(0.5),
			PLoad:         f(10),
			Database:      s("desicos"),
		},
		"wp2_dlr_des_01": {
			RBot:              f(250),
			H:                 f(500),
			ElemType:          s("S4R"),
			NumelR:            i(192),
			PlyT:              f(0.125),
			Stack:             []float64{24, -24, 41, -41},
			LaminapropKey:     s("degenhardt_2010_IM78552_isa"),
			AllowablesKey:     s("degenhardt_2010_IM78552_isa"),
			AxialDispl:        f(1),
			PLoads:            []float64{1, 2, 3, 4, 5, 10},
			ArtificialDamping: null.BoolFrom(true),
		},
		"wp2_dlr_des_02": {
			RBot:              f(400),
			H:                 f(800),
			ElemType:          s("S4R"),
			NumelR:            i(192),
			PlyT:              f(0.125),
			Stack:             []float64{34, -34, 0, 0, 53, -53},
			LaminapropKey:     s("degenhardt_2010_IM78552_isa"),
			AllowablesKey:     s("degenhardt_2010_IM78552_isa"),
			AxialDispl:        f(0.6),
			PLoads:            []float64{4, 5, 10, 11, 12, 13, 14, 15, 20, 30},
			ArtificialDamping: null.BoolFrom(true),
		},
		"desicos_2014_c17": {
			RBot:              f(400),
			H:                 f(300),
			AlphaDeg:          f(35),
			ElemType:          s("S8R"),
			NumelR:            i(140),
			PlyT:              f(0.125),
			Stack:             []float64{30, 0, -30, -30, 0, 30},
			LaminapropKey:     s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey:     s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:        f(0.5),
			PLoads:            []float64{0.5, 1, 2, 5, 7, 10, 15},
			ArtificialDamping: null.BoolFrom(true),
			Database:          s("desicos"),
		},
		"desicos_2014_c18": {
			RBot:              f(400),
			H:                 f(300),
			AlphaDeg:          f(35),
			ElemType:          s("S8R"),
			NumelR:            i(140),
			PlyT:              f(0.125),
			Stack:             []float64{30, -30, 0, 0, 30, -30},
			LaminapropKey:     s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey:     s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:        f(0.5),
			PLoads:            []float64{0.5, 1, 2, 5, 7, 10, 15},
			ArtificialDamping: null.BoolFrom(true),
			Database:          s("desicos"),
		},
		"astrium_ESC-A_Cone3936": {
			RBot:          f(1968),
			H:             f(776.2711705412586),
			AlphaDeg:      f(40.2),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.25),
			Stack:         make([]float64, 28),
			LaminapropKey: s("M40J/77-2"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_1": {
			RBot:          f(400),
			H:             f(150),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{0, 45, 0, -45, 90, 90, -45, 0, 45, 0},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_1_less_2x0_plies": {
			RBot:          f(400),
			H:             f(150),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{0, 45, -45, 90, 90, -45, 45, 0},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_1_less_2x0_plies_45_out": {
			RBot:          f(400),
			H:             f(150),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 0, 90, 90, 0, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			DampingFactor: f(4e-7),
			Database:      s("desicos"),
		},
		"astrium_1_less_3x0_plies": {
			RBot:          f(400),
			H:             f(150),
			AlphaDeg:      f(45),
			ElemType:      s("S4R5"),
			NumelR:        i(360),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 90, 0, 90, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(0.6),
			PLoads:        []float64{0.2, 0.5, 1, 5, 10, 15, 30},
			DampingFactor: f(4e-7),
			Database:      s("desicos"),
		},
		"astrium_3": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{0, 45, 0, -45, 90, 0, 0, 90, -45, 0, 45, 0},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_3_less_2x0_plies_45_out": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 0, 90, 0, 0, 90, 0, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_3_less_4x0_plies_45_out": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 90, 0, 0, 90, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_3_less_5x0_plies_45_out": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 90, 0, 90, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"astrium_3_7a_original": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.125),
			Stack:         []float64{30, -30, -60, 60, 0, 60, -60, -30, 30},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(0.6),
			PLoads:        []float64{0.5, 1, 2, 10, 20, 30, 35, 40, 70},
			Database:      s("desicos"),
		},
		"astrium_3_7b_original": {
			RBot:          f(400),
			H:             f(200),
			AlphaDeg:      f(45),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.125),
			Stack:         []float64{45, 30, -45, -30, 0, -30, -45, 30, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoad:         f(20),
			Database:      s("desicos"),
		},
		"quasi_isotropic_cylinder": {
			RBot:          f(400),
			H:             f(800),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 90, 0, 0, 90, -45, 45},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			Database:      s("desicos"),
		},
		"wp2_rtu_d796": {
			RBot:          f(398),
			H:             f(600),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.5),
			Stack:         []float64{0},
			LaminapropKey: s("aisi_304_from_asm_aerospace"),
			AxialDispl:    f(1),
			Database:      s("desicos"),
		},
		"wp2_rtu_d796L": {
			RBot:          f(398),
			H:             f(1200),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.5),
			Stack:         []float64{0},
			LaminapropKey: s("aisi_304_from_asm_aerospace"),
			AxialDispl:    f(1),
			Database:      s("desicos"),
		},
		"sosa_2006_steel": {
			RBot:          f(15240),
			H:             f(13100),
			ElemType:      s("S8R5"),
			NumelR:        i(220),
			PlyT:          f(7.9),
			Stack:         []float64{0},
			LaminapropKey: s("sosa_2006_steel"),
			AxialDispl:    f(1),
			Database:      s("desicos"),
		},
		"wp3_t04_02_zsym": {
			RBot:          f(400),
			H:             f(800),
			ElemType:      s("S8R5"),
			NumelR:        i(120),
			PlyT:          f(0.125),
			Stack:         []float64{45, -45, 0, 0, -45, 45},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 8, 8.5, 9, 10},
			Database:      s("desicos"),
		},
		"efre_2014_r04": {
			RBot:          f(150),
			H:             f(300),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r04"),
			TI:            s("efre_2014_r04"),
		},
		"efre_2014_r05": {
			RBot:          f(150),
			H:             f(300),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r05"),
			TI:            s("efre_2014_r05"),
		},
		"efre_2014_r07": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r07"),
			TI:            s("efre_2014_r07"),
		},
		"efre_2014_r08": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r08"),
			TI:            s("efre_2014_r08"),
		},
		"efre_2014_r09": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r09"),
			TI:            s("efre_2014_r09"),
		},
		"efre_2014_r07_laser": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r07_laser"),
		},
		"efre_2014_r08_laser": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r08_laser"),
		},
		"efre_2014_r09_laser": {
			RBot:          f(250),
			H:             f(500),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.1044),
			Stack:         []float64{0, 0, 45, -45, 45, -45},
			LaminapropKey: s("efre_2014"),
			AllowablesKey: s("efre_2014"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10},
			Database:      s("efre"),
			MSI:           s("efre_2014_r09_laser"),
		},
		"afp": {
			RBot:          f(1000.96),
			H:             f(677.82),
			ElemType:      s("S4R5"),
			NumelR:        i(420),
			PlyT:          f(0.12111),
			Stack:         []float64{0, 60, -60, 0, 60, -60, 0, 60, -60},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			Database:      s("desicos"),
			MSI:           s("afp"),
		},
		"desicos_2014_z36": {
			RBot:          f(400),
			H:             f(800),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{34, -34, 0, 0, 53, -53},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(0.5),
			PLoads:        []float64{1, 2, 3, 5, 10, 15, 20, 25},
			Database:      s("desicos"),
		},
		"huehne_2002_z26": {
			RBot:          f(250 + 2*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
		},
		"huehne_2002_z27": {
			RBot:          f(250 + 2*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{75, -75, 75, -75},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
		},
		"huehne_2002_z14": {
			RBot:          f(250 + 3*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{51, -51, 90, 90, 40, -40},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10, 20, 30},
			Database:      s("dlr"),
		},
		"huehne_2002_z22": {
			RBot:          f(250 + 3*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{49, -49, 36, -36, 0, 0},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10, 20, 30},
			Database:      s("dlr"),
		},
		"huehne_2002_z23": {
			RBot:          f(250 + 5*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{60, -60, 0, 0, 68, -68, 52, -52, 37, -37},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 10, 20, 30, 40, 50, 70, 90},
			Database:      s("dlr"),
		},
		"huehne_2002_z24": {
			RBot:          f(250 + 5*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{-51, 51, -45, 45, -37, 37, -19, 19, 0, 0},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 10, 20, 30, 40, 50, 70, 90},
			Database:      s("dlr"),
		},
		"huehne_2002_z30": {
			RBot:          f(250 + 5*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{30, -30, 90, 90, 22, -22, 38, -38, 53, -53},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 10, 20, 30, 40, 50, 70, 90},
			Database:      s("dlr"),
		},
		"huehne_2002_z33": {
			RBot:          f(250 + 5*0.125),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(180),
			PlyT:          f(0.125),
			Stack:         []float64{0, 0, 19, -19, 37, -37, 45, -45, 51, -51},
			LaminapropKey: s("geier_2002"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 10, 20, 30, 40, 50, 70, 90},
			Database:      s("dlr"),
		},
		"huehne_2008_z07": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("mat_huehne_2008"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			RefLimitDisp:  f(0.24),
			RefLimitLoad:  f(16200),
			Database:      s("dlr"),
		},
		"dinkler_2010": {
			RBot:          f(100),
			H:             f(100),
			ElSize:        f(5),
			PlyT:          f(0.125),
			Stack:         []float64{0, 0, 0, 90},
			LaminapropKey: s("mat_huehne_2008"),
			RefLimitLoad:  f(145.3 * 2 * math.Pi * 100),
			Database:      s("dlr"),
		},
		"degenhardt_2010_z15": {
			RBot:          f(250.27),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.11575),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z15"),
			TI:            s("degenhardt_2010_z15"),
		},
		"degenhardt_2010_z17": {
			RBot:          f(250.35),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.11525),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z17"),
			TI:            s("degenhardt_2010_z17"),
		},
		"degenhardt_2010_z18": {
			RBot:          f(250.3),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.1195),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z18"),
			TI:            s("degenhardt_2010_z18"),
		},
		"degenhardt_2010_z20": {
			RBot:          f(250.3),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.12225),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z20"),
			TI:            s("degenhardt_2010_z20"),
		},
		"degenhardt_2010_z21": {
			RBot:          f(250.24),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.12125),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z21"),
			TI:            s("degenhardt_2010_z21"),
		},
		"degenhardt_2010_z22": {
			RBot:          f(250.3),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.1215),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z22"),
			TI:            s("degenhardt_2010_z22"),
		},
		"degenhardt_2010_z23": {
			RBot:          f(250.23),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.1195),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z23"),
			TI:            s("degenhardt_2010_z23"),
		},
		"degenhardt_2010_z24": {
			RBot:          f(250.22),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.12375),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z24"),
			TI:            s("degenhardt_2010_z24"),
		},
		"degenhardt_2010_z25": {
			RBot:          f(250.24),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.117),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z25"),
			TI:            s("degenhardt_2010_z25"),
		},
		"degenhardt_2010_z26": {
			RBot:          f(250.27),
			H:             f(500),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.1195),
			Stack:         []float64{24, -24, 41, -41},
			LaminapropKey: s("degenhardt_2010_IM78552_cocomat"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 2, 3, 4, 5, 10},
			Database:      s("dlr"),
			MSI:           s("degenhardt_2010_z26"),
			TI:            s("degenhardt_2010_z26"),
		},
		"zimmermann_1992_z32": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{-51, 51, -45, 45, -37, 37, -19, 19, 0, 0},
			LaminapropKey: s("geier_2002"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 20, 30, 35, 50, 75},
			Database:      s("dlr"),
		},
		"zimmermann_1992_z33": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S4R"),
			NumelR:        i(240),
			PlyT:          f(0.125),
			Stack:         []float64{0, 0, 19, -19, 37, -37, 45, -45, 51, -51},
			LaminapropKey: s("geier_2002"),
			AllowablesKey: s("degenhardt_2010_IM78552_cocomat"),
			AxialDispl:    f(1),
			PLoads:        []float64{1, 10, 20, 30, 40, 46.5, 70, 90},
			Database:      s("dlr"),
			MSI:           s("zimmermann_1992_z33"),
		},
		"geier_1991_z11": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{60, -60, 0, 0, 68, -68, 52, -52, 37, -37},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z12": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{51, -51, 45, -45, 37, -37, 19, -19, 0, 0},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z14": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{51, -51, 90, 90, 40, -40},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z17": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{30, -30, 90, 90, 22, -22, 38, -38, 53, -53},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z18": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{-37, 37, -52, 52, -68, 68, 0, 0, -60, 60},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z21": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{39, -39, 0, 0, 50, -50},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"geier_1991_z22": {
			RBot:          f(250),
			H:             f(510),
			ElemType:      s("S8R5"),
			NumelR:        i(140),
			PlyT:          f(0.125),
			Stack:         []float64{49, -49, 36, -36, 0, 0},
			LaminapropKey: s("geier_1997"),
			Database:      s("dlr"),
		},
		"hilburger_2002_c1": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 0, 0, 0, 0, -45, 45},
			LaminapropKey: s("hilburger_2002"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9201"),
			TI:            s("awcyl9201"),
		},
		"hilburger_2002_c2": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 90, 90, 90, 90, -45, 45},
			LaminapropKey: s("hilburger_2002"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9202"),
			TI:            s("awcyl9202"),
		},
		"hilburger_2002_c3": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 0, 90, 90, 0, -45, 45},
			LaminapropKey: s("hilburger_2002"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9203"),
			TI:            s("awcyl9203"),
		},
		"hilburger_2004_c1": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 0, 0, 0, 0, -45, 45},
			LaminapropKey: s("hilburger_2004"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9201"),
			TI:            s("awcyl9201"),
		},
		"hilburger_2004_c2": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 90, 90, 90, 90, -45, 45},
			LaminapropKey: s("hilburger_2004"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9202"),
			TI:            s("awcyl9202"),
		},
		"hilburger_2004_c3": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 0, 90, 90, 0, -45, 45},
			LaminapropKey: s("hilburger_2004"),
			PLoads:        []float64{1, 2, 5, 10, 30},
			Database:      s("nasa"),
			MSI:           s("awcyl9203"),
			TI:            s("awcyl9203"),
		},
		"hilburger_2002_c6": {
			RBot:          f(units.In2mm(8)),
			H:             f(units.In2mm(16)),
			ElemType:      s("S4R"),
			NumelR:        i(252),
			PlyT:          f(units.In2mm(0.005)),
			Stack:         []float64{45, -45, 0, 90, 45, -45, 0, 90, 90, 0, -45, 45, 90, 0, -45, 45},
			LaminapropKey: s("hilburger_2004"),
			PLoads:        []float64{1, 2, 5, 10, 30, 40, 50, 70, 100},
			Database:      s("nasa"),
			MSI:           s("awcyl111"),
			TI:            s("awcyl111"),
		},
		"hilburger_2014_c1": {
			RBot:          f(406.4),
			H:             f(1219.2),
			ElemType:      s("S8R5"),
			NumelR:        i(128),
			PlyT:          f(units.In2mm(0.032)),
			Stack:         []float64{0},
			LaminapropKey: s("hilburger_2014_AlLi"),
			AllowablesKey: s("hilburger_2014_AlLi"),
		},
	}
}
