package construct

// View is an encapsulated piece of UI that can be written to the terminal.
// To show a View, pass it to Construct.Display.
type View interface {
	// Title returns the heading written above the content. It must not have side effects.
	Title() string
	// Content writes the body of the view. It may call nav.Display to move to
	// another view; write failures from t are returned as *WriteError.
	Content(t *Terminal, nav Navigator) error
}

// Navigator displays views. Views receive one so they can chain to the next screen.
type Navigator interface {
	Display(v View) error
}

// ViewFunc adapts a title and a content function to a View.
func ViewFunc(title string, content func(t *Terminal, nav Navigator) error) View {
	return viewFunc{title: title, content: content}
}

type viewFunc struct {
	title   string
	content func(t *Terminal, nav Navigator) error
}

func (v viewFunc) Title() string { return v.title }

func (v viewFunc) Content(t *Terminal, nav Navigator) error {
	if v.content == nil {
		return nil
	}
	return v.content(t, nav)
}
