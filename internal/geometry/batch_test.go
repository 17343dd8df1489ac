package geometry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Conecyl/internal/ccs"
)

func TestCalculateBatch(t *testing.T) {
	res, err := CalculateBatch(ccs.Default(), BatchInput{Names: []string{"afp", "astrium_des1"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 2 || res.Results[1].Result.Kind != "cone" {
		t.Fatalf("res = %+v", res)
	}

	if _, err := CalculateBatch(ccs.Default(), BatchInput{}); !errors.Is(err, ErrNoItems) {
		t.Fatalf("empty: err = %v", err)
	}
	_, err = CalculateBatch(ccs.Default(), BatchInput{Names: []string{"afp", "nope"}})
	if !errors.Is(err, ccs.ErrUnknownSpecimen) {
		t.Fatalf("unknown: err = %v", err)
	}
}

func TestBatchHandler(t *testing.T) {
	h := &Handler{Catalog: ccs.Default()}
	cases := []struct {
		body string
		want int
	}{
		{`{"names":["afp","dinkler_2010"]}`, http.StatusOK},
		{`{"names":[]}`, http.StatusBadRequest},
		{`{"names":["nope"]}`, http.StatusNotFound},
		{`{`, http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.Batch(rec, httptest.NewRequest("POST", "/geometry/batch", strings.NewReader(c.body)))
		if rec.Code != c.want {
			t.Errorf("%s: status %d, want %d", c.body, rec.Code, c.want)
		}
	}
}
