package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envMap(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name             string
		forcePlain       bool
		noColor          bool
		forceInteractive bool
		isTTY            bool
		env              map[string]string
		want             OutputMode
	}{
		{name: "tty defaults to styled", isTTY: true, want: OutputModeStyled},
		{name: "pipe is plain", isTTY: false, want: OutputModePlain},
		{name: "interactive on tty", forceInteractive: true, isTTY: true, want: OutputModeInteractive},
		{name: "interactive needs tty", forceInteractive: true, isTTY: false, want: OutputModePlain},
		{name: "force plain wins", forcePlain: true, forceInteractive: true, isTTY: true, want: OutputModePlain},
		{name: "no-color flag", noColor: true, isTTY: true, want: OutputModePlain},
		{name: "NO_COLOR set", isTTY: true, env: map[string]string{"NO_COLOR": ""}, want: OutputModePlain},
		{name: "dumb terminal", isTTY: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "xterm", isTTY: true, env: map[string]string{"TERM": "xterm-256color"}, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectOutputMode(tt.forcePlain, tt.noColor, tt.forceInteractive, tt.isTTY, envMap(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}

func TestTerminalWidth(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.Positive(t, TerminalWidth())
}
