// Package output selects the color profile used for rendered reports.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set, or when color is disabled explicitly.
// Otherwise it detects the capabilities of the terminal behind w.
func ColorProfile(w io.Writer, color bool) termenv.Profile {
	if !color || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}
