package pty

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestOpen_ReportsSize(t *testing.T) {
	p, err := Open(Size{Rows: 12, Cols: 34})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer p.Close()

	cols, rows, err := term.GetSize(int(p.Tty.Fd()))
	require.NoError(t, err)
	require.Equal(t, 34, cols)
	require.Equal(t, 12, rows)

	require.NoError(t, p.Resize(Size{Rows: 40, Cols: 100}))
	cols, rows, err = term.GetSize(int(p.Tty.Fd()))
	require.NoError(t, err)
	require.Equal(t, 100, cols)
	require.Equal(t, 40, rows)
}
