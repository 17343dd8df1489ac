package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var testKey = []byte("test-signing-key")

func protected(env *Authenv) http.Handler {
	return env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Subject(r.Context())))
	}))
}

func TestAuthMiddleware(t *testing.T) {
	env := &Authenv{JWTkey: testKey}
	good, _, err := IssueToken(testKey, "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, _, _ := IssueToken(testKey, "admin", -time.Hour)
	foreign, _, _ := IssueToken([]byte("other-key"), "admin", time.Hour)
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "admin"})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + good, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"alg none", "Bearer " + unsigned, http.StatusUnauthorized},
	}
	h := protected(env)
	for _, c := range cases {
		req := httptest.NewRequest("POST", "/admin/sync", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("%s: status %d, want %d", c.name, rec.Code, c.want)
		}
		if c.want == http.StatusOK && rec.Body.String() != "admin" {
			t.Errorf("%s: subject %q", c.name, rec.Body.String())
		}
	}
}

func TestAuthMiddlewareCookie(t *testing.T) {
	env := &Authenv{JWTkey: testKey}
	token, _, _ := IssueToken(testKey, "admin", time.Hour)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := httptest.NewRecorder()
	protected(env).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestIssueTokenWithoutKey(t *testing.T) {
	if _, _, err := IssueToken(nil, "admin", time.Hour); err != ErrNoKey {
		t.Fatalf("err = %v, want ErrNoKey", err)
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	env := &Authenv{JWTkey: testKey, AdminLogin: "admin", AdminHash: string(hash)}

	cases := []struct {
		body string
		want int
	}{
		{`{"login":"admin","password":"s3cret"}`, http.StatusOK},
		{`{"login":"admin","password":"nope"}`, http.StatusUnauthorized},
		{`{"login":"root","password":"s3cret"}`, http.StatusUnauthorized},
		{`{"login":"admin"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		env.LoginHandler(rec, httptest.NewRequest("POST", "/login", strings.NewReader(c.body)))
		if rec.Code != c.want {
			t.Errorf("%s: status %d, want %d", c.body, rec.Code, c.want)
			continue
		}
		if c.want != http.StatusOK {
			continue
		}
		var resp LoginResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if sub, err := env.parse(resp.Token); err != nil || sub != "admin" {
			t.Fatalf("issued token: subject %q, err %v", sub, err)
		}
		if len(rec.Result().Cookies()) != 1 {
			t.Fatal("session cookie not set")
		}
	}
}

func TestLoginDisabled(t *testing.T) {
	env := &Authenv{JWTkey: testKey, AdminLogin: "admin"}
	rec := httptest.NewRecorder()
	env.LoginHandler(rec, httptest.NewRequest("POST", "/login", strings.NewReader(`{"login":"admin","password":"x"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	// Another address has its own bucket.
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("second client: status %d", rec.Code)
	}
}
