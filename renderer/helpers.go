package renderer

import (
	"bytes"
	"io"
)

// section prints a header before its first row and a footer after its last
// one, and nothing at all when it has no rows.
type section struct {
	header  func(io.Writer)
	footer  func(io.Writer)
	printed bool
}

// newSection creates a section with the given header.
func newSection(header func(io.Writer)) *section {
	return &section{header: header}
}

// withFooter sets the function printing the section footer.
func (s *section) withFooter(f func(io.Writer)) *section {
	s.footer = f
	return s
}

// row prints the header, only on the first call. Call it before each row.
func (s *section) row(w io.Writer) {
	if s.printed {
		return
	}
	s.printed = true
	if s.header != nil {
		s.header(w)
	}
}

// close prints the footer if any row was printed.
func (s *section) close(w io.Writer) {
	if s.printed && s.footer != nil {
		s.footer(w)
	}
}

// conditionalBlock writes a whole block and keeps it only if block returns true.
func conditionalBlock(w io.Writer, block func(io.Writer) bool) {
	var buf bytes.Buffer
	if block(&buf) {
		io.Copy(w, &buf)
	}
}
