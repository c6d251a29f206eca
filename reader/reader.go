// Package reader loads Woc source files and quotes lines back for diagnostics.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/woc/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "reader")

type Line struct {
	Number int
	Text   string
}

// Source is a fully read file. Lines are numbered from 1.
type Source struct {
	Path  string
	Name  string
	Lines []Line
}

func ReadFile(path string) (*Source, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer handle.Close()

	return Read(handle, path)
}

// Read consumes r completely. path is only recorded.
func Read(r io.Reader, path string) (*Source, error) {
	src := &Source{
		Path: path,
		Name: filepath.Base(path),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		src.Lines = append(src.Lines, Line{
			Number: n,
			Text:   strings.TrimSuffix(scanner.Text(), "\r"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, tracerr.Wrap(err)
	}

	plog.Debugf("read %d lines from %s", len(src.Lines), path)
	return src, nil
}

// Text rejoins the lines with newlines so token positions match the file.
func (s *Source) Text() string {
	lines := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, l.Text)
	}
	return strings.Join(lines, "\n")
}

// Line returns line n, counting from 1.
func (s *Source) Line(n int) (Line, bool) {
	if n < 1 || n > len(s.Lines) {
		return Line{}, false
	}
	return s.Lines[n-1], true
}

// Excerpt renders the line a span starts on with carets under the span.
// Spans that end on a later line are underlined to the end of the first.
func (s *Source) Excerpt(span types.Span) (string, bool) {
	l, ok := s.Line(span.From.Line)
	if !ok {
		return "", false
	}
	text := []rune(l.Text)

	from := span.From.Column
	if from < 1 {
		from = 1
	}
	to := span.To.Column
	if span.To.Line != span.From.Line {
		to = len(text)
	}
	if to < from {
		to = from
	}

	var pad strings.Builder
	for i := 0; i < from-1; i++ {
		if i < len(text) && text[i] == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}

	gutter := fmt.Sprintf("%4d | ", l.Number)
	return fmt.Sprintf("%s%s\n%s%s%s",
		gutter, l.Text,
		strings.Repeat(" ", len(gutter)), pad.String(), strings.Repeat("^", to-from+1),
	), true
}
