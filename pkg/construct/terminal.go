package construct

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/cholwell/construct/internal/textutil"
)

// Terminal is the output target views write to.
//
// Every write goes through the Terminal so it can track the rows written
// since the last clear. When the underlying writer is a terminal its width is
// used to count soft-wrapped rows and its height caps what can be erased.
type Terminal struct {
	w   io.Writer
	fd  int
	tty bool

	rows int // rows above the cursor written since the last clear
	col  int // visual column of the cursor on the current row
}

// Stdout returns a Terminal writing to the process standard output.
func Stdout() *Terminal {
	return NewTerminal(os.Stdout)
}

// Stderr returns a Terminal writing to the process standard error.
func Stderr() *Terminal {
	return NewTerminal(os.Stderr)
}

// NewTerminal wraps w. If w is a file attached to a terminal, its size is
// queried on every write to account for line wrapping.
func NewTerminal(w io.Writer) *Terminal {
	t := &Terminal{w: w, fd: -1}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			t.fd = fd
			t.tty = true
		}
	}
	return t
}

// IsTerminal reports whether the underlying writer is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return t.tty
}

// Size returns the terminal dimensions in columns and rows.
// ok is false when the writer is not a terminal or the size query fails.
func (t *Terminal) Size() (cols, rows int, ok bool) {
	if !t.tty {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(t.fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// Write implements io.Writer so views can use fmt.Fprintf and friends.
// Errors are returned as *WriteError.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	t.track(string(p[:n]))
	if err != nil {
		return n, &WriteError{Op: "write", Err: err}
	}
	return n, nil
}

// WriteString writes s without a trailing newline.
func (t *Terminal) WriteString(s string) error {
	return t.write("write_str", s)
}

// WriteLine writes s followed by a newline.
func (t *Terminal) WriteLine(s string) error {
	return t.write("write_line", s+"\n")
}

// WriteLineBreak writes a single empty line.
func (t *Terminal) WriteLineBreak() error {
	return t.write("write_line_break", "\n")
}

// VisibleLines returns how many rows written since the last clear are still
// on screen, counting a partially written last row. This is the number of
// rows exact clearing erases.
func (t *Terminal) VisibleLines() int {
	n := t.rowsAbove()
	if t.col > 0 {
		n++
	}
	return n
}

// rowsAbove returns the tracked rows above the cursor that can still be
// reached. The cursor cannot move above the first visible row.
func (t *Terminal) rowsAbove() int {
	n := t.rows
	if _, height, ok := t.Size(); ok && n > height-1 {
		n = height - 1
	}
	return n
}

// Echoed records text the terminal displayed without it passing through
// Write, such as a line of input echoed by the tty while a view reads from
// it. Exact clearing only erases rows it knows about.
func (t *Terminal) Echoed(s string) {
	t.track(s)
}

// Clear erases exactly the rows written since the last clear.
func (t *Terminal) Clear() error {
	return t.ClearWith(Exact())
}

// ClearWith erases previous output using the given strategy.
func (t *Terminal) ClearWith(c Clearing) error {
	if c.fixed {
		return t.ClearLastLines(c.bound)
	}
	if t.rows == 0 && t.col == 0 {
		return nil
	}
	return t.ClearLastLines(t.rowsAbove())
}

// ClearLastLines moves the cursor up n rows and erases from there to the end
// of the screen, including the row the cursor was on.
func (t *Terminal) ClearLastLines(n int) error {
	var b strings.Builder
	b.WriteByte('\r')
	if n > 0 {
		b.WriteString(ansi.CursorUp(n))
	}
	b.WriteString(ansi.EraseScreenBelow)
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return &WriteError{Op: "clear_last_lines", Err: err}
	}
	t.rows, t.col = 0, 0
	return nil
}

func (t *Terminal) write(op, s string) error {
	n, err := io.WriteString(t.w, s)
	t.track(s[:n])
	if err != nil {
		return &WriteError{Op: op, Err: err}
	}
	return nil
}

// track advances the row/column bookkeeping over text that reached the writer.
func (t *Terminal) track(s string) {
	cols := -1 // queried at most once, and only when text lands on a row
	for i, seg := range strings.Split(s, "\n") {
		if i > 0 {
			t.rows++
			t.col = 0
		}
		if j := strings.LastIndexByte(seg, '\r'); j >= 0 {
			seg = seg[j+1:]
			t.col = 0
		}
		if seg == "" {
			continue
		}
		if cols < 0 {
			cols, _, _ = t.Size()
		}
		var wraps int
		t.col, wraps = textutil.Advance(t.col, seg, cols)
		t.rows += wraps
	}
}
