package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	envNoInteraction = "NO_INTERACTION"
	envCI            = "CI"
	envTerm          = "TERM"
)

// ConfigureOutput picks the color profile for command output written to w
// and reports whether w is an interactive terminal. Non-interactive output is
// plain ASCII, so piped tables and step lines carry no escape codes.
func ConfigureOutput(w io.Writer, noInteraction bool) bool {
	interactive := !noInteraction && !envTruthy(envNoInteraction) && !envTruthy(envCI) &&
		!strings.EqualFold(strings.TrimSpace(os.Getenv(envTerm)), "dumb") && isTerminal(w)

	if !interactive {
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	// NO_COLOR and CLICOLOR_FORCE still apply to a terminal.
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	return true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func envTruthy(key string) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
