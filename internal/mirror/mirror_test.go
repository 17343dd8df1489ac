package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"Conecyl/internal/auth"
	"Conecyl/internal/ccs"
	"Conecyl/internal/repo"

	"github.com/gorilla/mux"
)

type fakeRepo struct {
	schema  bool
	rows    map[string]ccs.Specimen
	aliases map[string]string
	failOn  string
	// drop is accepted by Upsert but never stored.
	drop string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]ccs.Specimen{}, aliases: map[string]string{}}
}

func (f *fakeRepo) EnsureSchema(ctx context.Context) error {
	f.schema = true
	return nil
}

func (f *fakeRepo) Upsert(ctx context.Context, name, aliasOf string, s ccs.Specimen) error {
	if name == f.failOn {
		return errors.New("boom")
	}
	if name == f.drop {
		return nil
	}
	f.rows[name] = s
	if aliasOf != "" {
		f.aliases[name] = aliasOf
	}
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, name string) (ccs.Specimen, error) {
	s, ok := f.rows[name]
	if !ok {
		return ccs.Specimen{}, fmt.Errorf("%w: %s", repo.ErrNotFound, name)
	}
	return s, nil
}

func (f *fakeRepo) Names(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.rows))
	for name := range f.rows {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func TestSync(t *testing.T) {
	r := newFakeRepo()
	c := ccs.Default()
	res, err := Sync(context.Background(), r, c)
	if err != nil {
		t.Fatal(err)
	}
	if !r.schema {
		t.Fatal("schema not ensured")
	}
	if res.Written != c.Len() || res.Aliases != 4 || len(res.Missing) != 0 {
		t.Fatalf("res = %+v", res)
	}
	want, _ := c.Get("efre_2014_r07_laser")
	if !r.rows["efre_2014_r07_laser"].Equal(want) {
		t.Fatal("stored specimen differs from catalog")
	}
	if r.aliases["desicos_2014_z37"] != "desicos_2014_z36" {
		t.Fatalf("aliases = %v", r.aliases)
	}
}

func TestSyncReportsMissing(t *testing.T) {
	r := newFakeRepo()
	r.drop = "dinkler_2010"
	res, err := Sync(context.Background(), r, ccs.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "dinkler_2010" {
		t.Fatalf("Missing = %v, want [dinkler_2010]", res.Missing)
	}
}

func TestSyncStopsOnError(t *testing.T) {
	r := newFakeRepo()
	r.failOn = "astrium_1"
	res, err := Sync(context.Background(), r, ccs.Default())
	if err == nil {
		t.Fatal("expected error")
	}
	// afp is the only name sorted before astrium_1.
	if res.Written != 1 {
		t.Fatalf("Written = %d, want 1", res.Written)
	}
}

func TestSyncCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Sync(ctx, newFakeRepo(), ccs.Default()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/admin/sync", h.Sync).Methods("POST")
	r.HandleFunc("/admin/mirror", h.Names).Methods("GET")
	r.HandleFunc("/admin/mirror/{name}", h.Get).Methods("GET")
	return r
}

func TestHandlerWithoutDatabase(t *testing.T) {
	r := newRouter(&Handler{Catalog: ccs.Default()})
	for _, req := range []*http.Request{
		httptest.NewRequest("POST", "/admin/sync", nil),
		httptest.NewRequest("GET", "/admin/mirror", nil),
		httptest.NewRequest("GET", "/admin/mirror/afp", nil),
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: status %d, want 503", req.Method, req.URL.Path, rec.Code)
		}
	}
}

func TestHandlerSyncLogsSubject(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	key := []byte("k")
	token, _, err := auth.IssueToken(key, "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	h := &Handler{Repo: newFakeRepo(), Catalog: ccs.Default()}
	env := &auth.Authenv{JWTkey: key}
	protected := env.AuthMiddleware(http.HandlerFunc(h.Sync))

	req := httptest.NewRequest("POST", "/admin/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(logs.String(), "sync requested by admin") {
		t.Fatalf("log = %q", logs.String())
	}
}

func TestHandlerNamesAndGet(t *testing.T) {
	fr := newFakeRepo()
	if _, err := Sync(context.Background(), fr, ccs.Default()); err != nil {
		t.Fatal(err)
	}
	r := newRouter(&Handler{Repo: fr, Catalog: ccs.Default()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/mirror", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("names: status %d", rec.Code)
	}
	var names NamesResponse
	if err := json.NewDecoder(rec.Body).Decode(&names); err != nil {
		t.Fatal(err)
	}
	if len(names.Names) != ccs.Default().Len() || names.Names[0] != "afp" {
		t.Fatalf("names = %d entries, first %q", len(names.Names), names.Names[0])
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/mirror/hilburger_2002_c1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}
	var got struct {
		Name     string         `json:"name"`
		Specimen map[string]any `json:"specimen"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "hilburger_2002_c1" || got.Specimen["msi"] != "awcyl9201" {
		t.Fatalf("got = %+v", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/mirror/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown: status %d, want 404", rec.Code)
	}
}
