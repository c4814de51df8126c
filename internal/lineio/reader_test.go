package lineio

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestReaderPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	var lines []string
	scanner := r.Scanner()
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReaderGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("a|b|-1\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	scanner := r.Scanner()
	if !scanner.Scan() {
		t.Fatal("expected one line from the gzip body")
	}
	if got := scanner.Text(); got != "a|b|-1" {
		t.Errorf("line = %q, want %q", got, "a|b|-1")
	}
}

func TestReaderMissingFile(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "missing.txt"))
	if err := r.Open(); err == nil {
		t.Error("expected an error opening a nonexistent file")
	}
}
