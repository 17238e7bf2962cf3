package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text, for pipes, files and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is Lip Gloss output printed once.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea calculator.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode for stdout.
//
// forcePlain and noColor (or the NO_COLOR / TERM=dumb environment) select plain output.
// forceInteractive selects the calculator when stdout is a terminal. Otherwise a terminal
// gets styled output and anything else gets plain output.
func DetectOutputMode(forcePlain, noColor, forceInteractive bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, forceInteractive, IsTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(
	forcePlain, noColor, forceInteractive, isTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain || noColor {
		return OutputModePlain
	}
	if _, set := lookupEnv("NO_COLOR"); set {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if !isTTY {
		return OutputModePlain
	}
	if forceInteractive {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or defaultWidth when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
