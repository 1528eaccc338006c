// Package pty opens pseudo-terminal pairs so terminal behaviour (size
// queries, line wrapping) can be exercised without a real console.
package pty

import (
	"io"
	"os"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Pair is an open pseudo-terminal. Output written to Tty can be read from Master.
type Pair struct {
	Master *os.File
	Tty    *os.File
}

// Open allocates a pseudo-terminal with the given size.
func Open(size Size) (*Pair, error) {
	master, tty, err := pty.Open()
	if err != nil {
		return nil, err
	}
	p := &Pair{Master: master, Tty: tty}
	if err := p.Resize(size); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Resize changes the terminal dimensions reported to the Tty side.
func (p *Pair) Resize(size Size) error {
	return pty.Setsize(p.Tty, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Drain copies everything written to the Tty into w until the pair is closed.
// Without a reader, writes to the Tty block once the kernel buffer fills.
// The returned channel is closed once copying stops.
func (p *Pair) Drain(w io.Writer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = io.Copy(w, p.Master)
	}()
	return done
}

// Close closes both ends of the pair.
func (p *Pair) Close() error {
	ttyErr := p.Tty.Close()
	if err := p.Master.Close(); err != nil {
		return err
	}
	return ttyErr
}
