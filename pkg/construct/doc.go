// Package construct provides simple view based routing for line-oriented terminals.
//
// Core abstractions:
//   - View: a screen with a title and a content renderer
//   - Navigator: the read-only capability a View receives to move to the next screen
//   - Construct: the router; clears the previous screen, writes the logo and title,
//     then hands the terminal to the View
//   - Terminal: the output target; tracks how many rows it has written so the
//     next screen can erase exactly those
//
// A View chains to the next screen by calling Display on the Navigator it was given:
//
//	type menu struct{}
//
//	func (menu) Title() string { return "Menu" }
//
//	func (menu) Content(t *construct.Terminal, nav construct.Navigator) error {
//	    if err := t.WriteLine("1) settings"); err != nil {
//	        return err
//	    }
//	    return nav.Display(settings{})
//	}
//
//	c := construct.NewBuilder().WithLogo("ACME").Build()
//	if err := c.Display(menu{}); err != nil {
//	    log.Fatal(err)
//	}
package construct
