package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes").
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// ConfirmOverwrite asks whether the existing file at path may be replaced.
//
// The prompt defaults to "No" when the user presses Enter without input or closes the
// input. Valid inputs: "y" and "yes" in any case for acceptance; anything else declines.
// Callers only prompt when stdin is a terminal.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string) PromptResult {
	fmt.Fprintf(writer, "? %s already exists. Overwrite it with the defaults? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
