package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestList(t *testing.T) {
	var buf bytes.Buffer
	if err := run("list", []string{"-gui"}, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 48 || lines[0] != "afp" {
		t.Fatalf("got %d lines, first %q", len(lines), lines[0])
	}

	buf.Reset()
	if err := run("list", []string{"-database", "nasa"}, &buf); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 7 {
		t.Fatalf("nasa: %d lines, want 7", n)
	}
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	if err := run("show", []string{"hilburger_2002_c1"}, &buf); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["msi"] != "awcyl9201" {
		t.Fatalf("msi = %v", got["msi"])
	}
	if err := run("show", []string{"nope"}, &buf); err == nil {
		t.Fatal("expected error for unknown specimen")
	}
	if err := run("show", nil, &buf); !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want errUsage", err)
	}
}

func TestExportAndReportFiles(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "ccs.xlsx")
	pdf := filepath.Join(dir, "afp.pdf")
	var buf bytes.Buffer
	if err := run("export", []string{"-format", "xlsx", "-o", xlsx}, &buf); err != nil {
		t.Fatal(err)
	}
	if err := run("report", []string{"-o", pdf, "afp"}, &buf); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{xlsx, pdf} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("%s: %v", p, err)
		}
	}
	if err := run("export", []string{"-format", "ods"}, &buf); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExportCSVToStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := run("export", []string{"-format", "csv"}, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "name,alias_of,rbot,H,") {
		t.Fatalf("header = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestHashPassword(t *testing.T) {
	var buf bytes.Buffer
	if err := run("hash-password", []string{"-password", "pw"}, &buf); err != nil {
		t.Fatal(err)
	}
	hash := strings.TrimSpace(buf.String())
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")); err != nil {
		t.Fatal(err)
	}
}

func TestUnknownCommand(t *testing.T) {
	if err := run("frobnicate", nil, &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want errUsage", err)
	}
}
