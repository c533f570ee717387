// Package scan is the byte scanner shared by the path data and transform
// list parsers.
package scan

import "github.com/tdewolff/parse/v2/strconv"

// Scanner walks an attribute value byte by byte.
type Scanner struct {
	buf []byte
	Pos int
}

func New(s string) *Scanner {
	return &Scanner{buf: []byte(s)}
}

func (s *Scanner) EOF() bool {
	return s.Pos >= len(s.buf)
}

// Peek returns the current byte, or 0 at the end of input.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.buf[s.Pos]
}

// SkipSpace skips SVG whitespace.
func (s *Scanner) SkipSpace() {
	for !s.EOF() && IsSpace(s.buf[s.Pos]) {
		s.Pos++
	}
}

// SkipCommaSpace skips whitespace with at most one comma and reports
// whether a comma was found.
func (s *Scanner) SkipCommaSpace() bool {
	s.SkipSpace()
	if s.Peek() == ',' {
		s.Pos++
		s.SkipSpace()
		return true
	}
	return false
}

// Number reads a number at the current position. A sign, a fraction and
// an exponent are accepted; ok is false when no number starts here.
func (s *Scanner) Number() (f float64, ok bool) {
	if s.EOF() {
		return 0, false
	}
	f, n := strconv.ParseFloat(s.buf[s.Pos:])
	if n == 0 {
		return 0, false
	}
	s.Pos += n
	return f, true
}

// Ident reads a run of ASCII letters.
func (s *Scanner) Ident() string {
	start := s.Pos
	for !s.EOF() && isLetter(s.buf[s.Pos]) {
		s.Pos++
	}
	return string(s.buf[start:s.Pos])
}

func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// IsNumberStart reports whether c can begin a number.
func IsNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
