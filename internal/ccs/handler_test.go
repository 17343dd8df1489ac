package ccs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newRouter() *mux.Router {
	h := &Handler{Catalog: Default()}
	r := mux.NewRouter()
	r.HandleFunc("/specimens", h.List).Methods("GET")
	r.HandleFunc("/specimens/{name}", h.Get).Methods("GET")
	return r
}

func TestHandlerList(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"", 73},
		{"?gui=1", 48},
		{"?database=efre", 8},
		{"?database=unknown", 0},
	}
	r := newRouter()
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/specimens"+c.query, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: status %d", c.query, rec.Code)
		}
		var resp ListResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%q: %v", c.query, err)
		}
		if len(resp.Names) != c.want {
			t.Errorf("%q: got %d names, want %d", c.query, len(resp.Names), c.want)
		}
	}
}

func TestHandlerGet(t *testing.T) {
	r := newRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/specimens/desicos_2014_z37", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Name     string         `json:"name"`
		AliasOf  string         `json:"alias_of"`
		Specimen map[string]any `json:"specimen"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.AliasOf != "desicos_2014_z36" {
		t.Fatalf("alias_of = %q", resp.AliasOf)
	}
	if resp.Specimen["rbot"] != float64(400) || resp.Specimen["elem_type"] != "S8R5" {
		t.Fatalf("specimen = %v", resp.Specimen)
	}
}

func TestHandlerGetUnknown(t *testing.T) {
	r := newRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/specimens/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}
