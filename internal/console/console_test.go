package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderStripsLineEndings(t *testing.T) {
	r := NewReader(strings.NewReader("go forest\r\nhunt\nquit"))
	want := []string{"go forest", "hunt", "quit"}
	for _, w := range want {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != w {
			t.Errorf("ReadLine()=%q want %q", got, w)
		}
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	r := NewReader(strings.NewReader(long + "\ngo forest\n"))

	got, err := r.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if got != long {
		t.Fatalf("expected a %d byte line, got %d bytes", len(long), len(got))
	}
	if got, err := r.ReadLine(); err != nil || got != "go forest" {
		t.Fatalf("ReadLine()=%q, %v want %q", got, err, "go forest")
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestWriter(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	w.WriteLine("hello")
	w.BlankLine()
	w.WriteLine("bye")
	if got := out.String(); got != "hello\n\nbye\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestBuffer(t *testing.T) {
	var b Buffer
	b.WriteLine("a")
	b.BlankLine()
	if !b.Contains("a") || len(b.Lines()) != 2 {
		t.Fatalf("unexpected lines %q", b.Lines())
	}
	b.Reset()
	if len(b.Lines()) != 0 || b.String() != "" {
		t.Fatalf("expected empty buffer after reset, got %q", b.Lines())
	}
}
