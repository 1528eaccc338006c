package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cholwell/construct/internal/textutil"
	"github.com/cholwell/construct/pkg/construct"
)

// app holds the state shared by every screen view of a demo session.
type app struct {
	screens *screenSet
	in      *bufio.Reader
	history history
	styled  bool
	echoes  bool   // in is a tty that echoes typed lines onto the screen
	notice  string // shown once on the next screen, e.g. an invalid choice
}

func newApp(screens *screenSet, in io.Reader, styled bool) *app {
	a := &app{screens: screens, in: bufio.NewReader(in), styled: styled}
	if f, ok := in.(interface{ Fd() uintptr }); ok {
		a.echoes = term.IsTerminal(int(f.Fd()))
	}
	return a
}

func (a *app) view(id string) construct.View {
	def, _ := a.screens.get(id)
	return &screenView{app: a, def: def}
}

// screenView renders one screen definition and reads the next choice.
type screenView struct {
	app *app
	def screenDef
}

func (v *screenView) Title() string {
	return v.def.Title
}

func (v *screenView) Content(t *construct.Terminal, nav construct.Navigator) error {
	a := v.app
	width := 0
	if cols, _, ok := t.Size(); ok {
		width = cols
	}

	if v.def.Body != "" {
		if err := t.WriteLineBreak(); err != nil {
			return err
		}
		for _, line := range textutil.Lines(v.def.Body) {
			if err := t.WriteLine(fit(line, width)); err != nil {
				return err
			}
		}
	}
	if err := t.WriteLineBreak(); err != nil {
		return err
	}
	for i, l := range v.def.Links {
		if err := t.WriteLine(fit(fmt.Sprintf("%d) %s", i+1, l.Label), width)); err != nil {
			return err
		}
	}
	hint := "q) quit"
	if a.history.len() > 0 {
		hint = "b) back  " + hint
	}
	if err := t.WriteLine(a.render(styles.Hint, hint)); err != nil {
		return err
	}
	if a.notice != "" {
		if err := t.WriteLine(a.render(styles.Error, a.notice)); err != nil {
			return err
		}
		a.notice = ""
	}
	if err := t.WriteString("> "); err != nil {
		return err
	}

	choice, err := a.in.ReadString('\n')
	if a.echoes {
		// Input and output share the terminal; the typed line sits below the prompt.
		t.Echoed(choice)
	}
	if err != nil && (err != io.EOF || choice == "") {
		// End of input ends the session.
		return nil
	}
	choice = strings.TrimSpace(choice)

	switch {
	case choice == "q":
		return nil
	case choice == "b":
		prev, ok := a.history.pop()
		if !ok {
			a.notice = "nothing to go back to"
			return nav.Display(v)
		}
		return nav.Display(a.view(prev))
	}

	n, convErr := strconv.Atoi(choice)
	if convErr != nil || n < 1 || n > len(v.def.Links) {
		a.notice = fmt.Sprintf("unknown choice %q", choice)
		return nav.Display(v)
	}
	a.history.push(v.def.ID)
	return nav.Display(a.view(v.def.Links[n-1].Target))
}

func (a *app) render(style lipgloss.Style, s string) string {
	if !a.styled {
		return s
	}
	return style.Render(s)
}

// fit truncates s to the terminal width when it is known.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return textutil.Truncate(s, width)
}
