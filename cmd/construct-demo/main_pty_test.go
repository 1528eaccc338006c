package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cholwell/construct/internal/pty"
	"github.com/cholwell/construct/internal/testutil"
)

var (
	homeScreen = []string{
		"Home",
		"",
		"Pick a screen. Each one replaces the last.",
		"",
		"1) About",
		"2) Settings",
		"q) quit",
		">",
	}
	aboutScreen = []string{
		"About",
		"",
		"construct clears the previous screen before drawing the next.",
		"",
		"1) Home",
		"b) back  q) quit",
		">",
	}
)

func TestRun_PTYShowsOnlyCurrentScreen(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := pty.Open(pty.Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer p.Close()
	scr := testutil.NewScreen(80)
	drained := p.Drain(scr)

	var errOut bytes.Buffer
	result := make(chan error, 1)
	go func() {
		result <- run(context.Background(), config{plain: true}, p.Tty, p.Tty, &errOut)
	}()

	waitForPrompt := func(n int) {
		t.Helper()
		require.Eventually(t, func() bool {
			return strings.Count(scr.Raw(), "> ") >= n
		}, 5*time.Second, 10*time.Millisecond, "prompt %d never shown", n)
	}
	typeLine := func(s string) {
		t.Helper()
		_, err := p.Master.Write([]byte(s + "\n"))
		require.NoError(t, err)
	}

	waitForPrompt(1)
	assert.Equal(t, homeScreen, scr.Lines())

	typeLine("1")
	waitForPrompt(2)
	assert.Equal(t, aboutScreen, scr.Lines())

	typeLine("b")
	waitForPrompt(3)
	assert.Equal(t, homeScreen, scr.Lines())

	typeLine("7")
	waitForPrompt(4)
	assert.Equal(t, append(append([]string{}, homeScreen[:7]...), `unknown choice "7"`, ">"), scr.Lines())

	typeLine("q")
	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("demo did not exit")
	}

	p.Tty.Close()
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out draining pty")
	}
	assert.Equal(t, append(append([]string{}, homeScreen[:7]...), `unknown choice "7"`, "> q"), scr.Lines())
}
