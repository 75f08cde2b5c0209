// Package output builds termenv outputs with the color rules shared by the
// logger and the plan renderer.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the profile for w. NO_COLOR and redirected files get
// plain ASCII; terminals get whatever the environment advertises.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w, defaulting to stderr.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)
}
