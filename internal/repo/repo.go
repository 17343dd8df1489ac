package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"Conecyl/internal/ccs"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"gopkg.in/guregu/null.v3"
)

var ErrNotFound = errors.New("repo: specimen not found")

type Repository interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, name, aliasOf string, s ccs.Specimen) error
	Get(ctx context.Context, name string) (ccs.Specimen, error)
	Names(ctx context.Context) ([]string, error)
}

type PostgresSpecimenRepository struct {
	db *sqlx.DB
}

func NewPostgresSpecimenDB(db *sqlx.DB) *PostgresSpecimenRepository {
	return &PostgresSpecimenRepository{db: db}
}

// InitDB opens and pings a Postgres pool. sslmode=require is appended when
// the URL does not choose a mode.
func InitDB(connStr string) (*sqlx.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS specimens (
	name               TEXT PRIMARY KEY,
	alias_of           TEXT,
	rbot               DOUBLE PRECISION,
	h                  DOUBLE PRECISION,
	alphadeg           DOUBLE PRECISION,
	elem_type          TEXT,
	numel_r            BIGINT,
	elsize             DOUBLE PRECISION,
	plyt               DOUBLE PRECISION,
	stack              DOUBLE PRECISION[],
	laminaprop_key     TEXT,
	allowables_key     TEXT,
	axial_displ        DOUBLE PRECISION,
	pload              DOUBLE PRECISION,
	ploads             DOUBLE PRECISION[],
	artificial_damping BOOLEAN,
	damping_factor     DOUBLE PRECISION,
	reflimitdisp       DOUBLE PRECISION,
	reflimitload       DOUBLE PRECISION,
	database           TEXT,
	msi                TEXT,
	ti                 TEXT,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// specimenRow maps one table row. Absent sequences are stored as NULL.
type specimenRow struct {
	Name              string          `db:"name"`
	AliasOf           null.String     `db:"alias_of"`
	RBot              null.Float      `db:"rbot"`
	H                 null.Float      `db:"h"`
	AlphaDeg          null.Float      `db:"alphadeg"`
	ElemType          null.String     `db:"elem_type"`
	NumelR            null.Int        `db:"numel_r"`
	ElSize            null.Float      `db:"elsize"`
	PlyT              null.Float      `db:"plyt"`
	Stack             pq.Float64Array `db:"stack"`
	LaminapropKey     null.String     `db:"laminaprop_key"`
	AllowablesKey     null.String     `db:"allowables_key"`
	AxialDispl        null.Float      `db:"axial_displ"`
	PLoad             null.Float      `db:"pload"`
	PLoads            pq.Float64Array `db:"ploads"`
	ArtificialDamping null.Bool       `db:"artificial_damping"`
	DampingFactor     null.Float      `db:"damping_factor"`
	RefLimitDisp      null.Float      `db:"reflimitdisp"`
	RefLimitLoad      null.Float      `db:"reflimitload"`
	Database          null.String     `db:"database"`
	MSI               null.String     `db:"msi"`
	TI                null.String     `db:"ti"`
}

var columns = []string{
	"name", "alias_of", "rbot", "h", "alphadeg", "elem_type", "numel_r", "elsize",
	"plyt", "stack", "laminaprop_key", "allowables_key", "axial_displ", "pload",
	"ploads", "artificial_damping", "damping_factor", "reflimitdisp",
	"reflimitload", "database", "msi", "ti",
}

func toRow(name, aliasOf string, s ccs.Specimen) specimenRow {
	return specimenRow{
		Name:              name,
		AliasOf:           null.NewString(aliasOf, aliasOf != ""),
		RBot:              s.RBot,
		H:                 s.H,
		AlphaDeg:          s.AlphaDeg,
		ElemType:          s.ElemType,
		NumelR:            s.NumelR,
		ElSize:            s.ElSize,
		PlyT:              s.PlyT,
		Stack:             pq.Float64Array(s.Stack),
		LaminapropKey:     s.LaminapropKey,
		AllowablesKey:     s.AllowablesKey,
		AxialDispl:        s.AxialDispl,
		PLoad:             s.PLoad,
		PLoads:            pq.Float64Array(s.PLoads),
		ArtificialDamping: s.ArtificialDamping,
		DampingFactor:     s.DampingFactor,
		RefLimitDisp:      s.RefLimitDisp,
		RefLimitLoad:      s.RefLimitLoad,
		Database:          s.Database,
		MSI:               s.MSI,
		TI:                s.TI,
	}
}

func (r specimenRow) specimen() ccs.Specimen {
	return ccs.Specimen{
		RBot:              r.RBot,
		H:                 r.H,
		AlphaDeg:          r.AlphaDeg,
		ElemType:          r.ElemType,
		NumelR:            r.NumelR,
		ElSize:            r.ElSize,
		PlyT:              r.PlyT,
		Stack:             []float64(r.Stack),
		LaminapropKey:     r.LaminapropKey,
		AllowablesKey:     r.AllowablesKey,
		AxialDispl:        r.AxialDispl,
		PLoad:             r.PLoad,
		PLoads:            []float64(r.PLoads),
		ArtificialDamping: r.ArtificialDamping,
		DampingFactor:     r.DampingFactor,
		RefLimitDisp:      r.RefLimitDisp,
		RefLimitLoad:      r.RefLimitLoad,
		Database:          r.Database,
		MSI:               r.MSI,
		TI:                r.TI,
	}
}

func upsertQuery() string {
	named := make([]string, len(columns))
	updates := make([]string, 0, len(columns))
	for i, c := range columns {
		named[i] = ":" + c
		if c != "name" {
			updates = append(updates, c+" = EXCLUDED."+c)
		}
	}
	updates = append(updates, "updated_at = now()")
	return "INSERT INTO specimens (" + strings.Join(columns, ", ") + ") VALUES (" +
		strings.Join(named, ", ") + ") ON CONFLICT (name) DO UPDATE SET " +
		strings.Join(updates, ", ")
}

var (
	upsertSQL = upsertQuery()
	selectSQL = "SELECT " + strings.Join(columns, ", ") + " FROM specimens WHERE name = $1"
)

func (r *PostgresSpecimenRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresSpecimenRepository) Upsert(ctx context.Context, name, aliasOf string, s ccs.Specimen) error {
	_, err := r.db.NamedExecContext(ctx, upsertSQL, toRow(name, aliasOf, s))
	return err
}

func (r *PostgresSpecimenRepository) Get(ctx context.Context, name string) (ccs.Specimen, error) {
	var row specimenRow
	err := r.db.GetContext(ctx, &row, selectSQL, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ccs.Specimen{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return ccs.Specimen{}, err
	}
	return row.specimen(), nil
}

func (r *PostgresSpecimenRepository) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, "SELECT name FROM specimens ORDER BY name")
	return names, err
}
