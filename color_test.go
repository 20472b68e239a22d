package paintercore_test

import (
	"testing"

	"github.com/sveg/paintercore"
	"github.com/sveg/paintercore/entities"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want entities.Color
	}{
		{"#fff", entities.Color{R: 1, G: 1, B: 1, A: 1}},
		{"000", entities.Color{R: 0, G: 0, B: 0, A: 1}},
		{"#ff000080", entities.Color{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"00ff00", entities.Color{R: 0, G: 1, B: 0, A: 1}},
	}

	for _, tt := range tests {
		got := paintercore.ColorFromHex(tt.hex)
		if got != tt.want {
			t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestColorFromHexWithInvalidLengthReturnsOpaqueBlack(t *testing.T) {
	got := paintercore.ColorFromHex("not-a-color")
	want := entities.Color{A: 1}
	if got != want {
		t.Errorf("ColorFromHex(invalid) = %+v, want %+v", got, want)
	}
}
