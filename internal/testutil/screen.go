// Package testutil provides a virtual screen for asserting what a terminal
// would show after a sequence of writes.
package testutil

import (
	"strconv"
	"strings"
	"sync"
)

// Screen is a minimal virtual terminal. It understands the subset of output
// construct produces: printable text, CR, LF (as CRLF), cursor up, erase
// below and erase line. cols <= 0 disables wrapping; there is no height
// limit and no scrolling.
//
// Screen is safe for concurrent use so it can be fed from a pty drain
// goroutine while a test inspects it.
type Screen struct {
	mu          sync.Mutex
	cols        int
	lines       [][]rune
	row, col    int
	pendingWrap bool
	raw         strings.Builder
}

// NewScreen creates an empty screen cols wide.
func NewScreen(cols int) *Screen {
	return &Screen{cols: cols, lines: [][]rune{{}}}
}

// Write interprets p. It never fails.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw.Write(p)
	runes := []rune(string(p))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\x1b':
			i = s.escape(runes, i)
		case '\r':
			s.col = 0
			s.pendingWrap = false
		case '\n':
			s.moveTo(s.row+1, 0)
		default:
			s.put(r)
		}
	}
	return len(p), nil
}

// WriteString writes str to the screen.
func (s *Screen) WriteString(str string) error {
	_, err := s.Write([]byte(str))
	return err
}

// Raw returns every byte written so far, escape sequences included.
func (s *Screen) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw.String()
}

// Lines returns the screen content without trailing blanks or trailing
// empty lines.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, strings.TrimRight(string(l), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// escape handles a CSI sequence starting at runes[i] and returns the index
// of its final byte. Sequences split across writes are dropped.
func (s *Screen) escape(runes []rune, i int) int {
	if i+1 >= len(runes) || runes[i+1] != '[' {
		return i
	}
	j := i + 2
	for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
		j++
	}
	if j >= len(runes) {
		return len(runes) - 1
	}
	n, err := strconv.Atoi(string(runes[i+2 : j]))
	if err != nil {
		n = 0
	}
	switch runes[j] {
	case 'A':
		if n == 0 {
			n = 1
		}
		s.moveTo(max(s.row-n, 0), s.col)
	case 'J':
		if n == 0 {
			s.lines = s.lines[:s.row+1]
			s.truncateRow(s.col)
		}
	case 'K':
		switch n {
		case 0:
			s.truncateRow(s.col)
		case 2:
			s.lines[s.row] = []rune{}
		}
	}
	return j
}

func (s *Screen) moveTo(row, col int) {
	for len(s.lines) <= row {
		s.lines = append(s.lines, []rune{})
	}
	s.row, s.col = row, col
	s.pendingWrap = false
}

func (s *Screen) truncateRow(col int) {
	if col < len(s.lines[s.row]) {
		s.lines[s.row] = s.lines[s.row][:col]
	}
}

func (s *Screen) put(r rune) {
	if s.pendingWrap {
		s.moveTo(s.row+1, 0)
	}
	if r == '\t' {
		// Tabs stop at the last column and never wrap.
		next := (s.col/8 + 1) * 8
		if s.cols > 0 && next > s.cols-1 {
			next = max(s.cols-1, s.col)
		}
		s.col = next
		return
	}
	line := s.lines[s.row]
	for len(line) <= s.col {
		line = append(line, ' ')
	}
	line[s.col] = r
	s.lines[s.row] = line
	s.col++
	if s.cols > 0 && s.col >= s.cols {
		s.col = s.cols
		s.pendingWrap = true
	}
}
