package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"idle state", StateIdle, ""},
		{"sending state", StateSending, "sending"},
		{"illustrating state", StateIllustrating, "illustrating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateGetIcon(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"idle icon", StateIdle, ""},
		{"sending icon", StateSending, "↑"},
		{"illustrating icon", StateIllustrating, "🖼"},
		{"unknown state", State("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.GetIcon())
		})
	}
}

func TestStateGetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"idle display", StateIdle, "Idle"},
		{"sending display", StateSending, "Waiting for reply"},
		{"illustrating display", StateIllustrating, "Generating image"},
		{"unknown state", State("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.GetDisplayName())
		})
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, StateIdle, For(false, 0))
	assert.Equal(t, StateSending, For(true, 0))
	assert.Equal(t, StateSending, For(true, 2))
	assert.Equal(t, StateIllustrating, For(false, 1))
}
