package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger on w (stderr when nil).
// stdout is reserved for the generated document, so nothing logs there.
func Init(w io.Writer, debug, noColor bool) {
	if w == nil {
		w = os.Stderr
	}

	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    true,
			ReportTimestamp: false,
			Prefix:          "PARSE",
		}))

	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
