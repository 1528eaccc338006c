package construct

import (
	"errors"

	"github.com/cholwell/construct/internal/testutil"
)

func newScreen(cols int) *testutil.Screen {
	return testutil.NewScreen(cols)
}

// failingWriter passes writes through to w until budget writes have been
// made, then fails every write.
type failingWriter struct {
	w      *testutil.Screen
	budget int
	writes int
}

var errBrokenPipe = errors.New("broken pipe")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.writes >= f.budget {
		return 0, errBrokenPipe
	}
	f.writes++
	return f.w.Write(p)
}
