// Package console provides the line-oriented input source and output sinks
// the game engine reads from and writes to.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads lines of any length from an io.Reader.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available. A final line without a
// terminator is still returned; io.EOF follows once the input is exhausted.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Writer writes lines to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteLine(s string) {
	fmt.Fprintln(w.w, s)
}

func (w *Writer) BlankLine() {
	fmt.Fprintln(w.w)
}

// Buffer keeps written lines in memory.
type Buffer struct {
	lines []string
}

func (b *Buffer) WriteLine(s string) {
	b.lines = append(b.lines, s)
}

func (b *Buffer) BlankLine() {
	b.lines = append(b.lines, "")
}

// Lines returns everything written since the last Reset.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the buffered lines with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Contains reports whether any buffered line equals s.
func (b *Buffer) Contains(s string) bool {
	for _, l := range b.lines {
		if l == s {
			return true
		}
	}
	return false
}

func (b *Buffer) Reset() {
	b.lines = b.lines[:0]
}
