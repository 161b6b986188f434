package terminal

import (
	"testing"
)

func TestAppendFg24(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{0, 0, 0}, "\x1b[38;2;0;0;0m"},
		{RGB{255, 98, 155}, "\x1b[38;2;255;98;155m"},
		{RGB{7, 42, 200}, "\x1b[38;2;7;42;200m"},
	}

	for _, tt := range tests {
		got := string(AppendFg24(nil, tt.c))
		if got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
		if Fg24(tt.c) != tt.want {
			t.Errorf("Fg24: expected %q, got %q", tt.want, Fg24(tt.c))
		}
	}
}

func TestAppendFg256(t *testing.T) {
	if got := string(AppendFg256(nil, 196)); got != "\x1b[38;5;196m" {
		t.Errorf("Expected 256-color sequence, got %q", got)
	}
}

func TestAppendInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-3, "0"},
		{0, "0"},
		{9, "9"},
		{42, "42"},
		{255, "255"},
		{1024, "1024"},
		{65535, "65535"},
	}

	for _, tt := range tests {
		if got := string(appendInt(nil, tt.n)); got != tt.want {
			t.Errorf("appendInt(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"pure cyan", RGB{0, 255, 255}, 51},
		{"mid gray ramp", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"truecolor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"256", ColorMode256, false},
		{"mono", ColorModeNone, false},
		{"NONE", ColorModeNone, false},
		{"sepia", ColorModeNone, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColorMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDetectColorModeEnv(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("COLORTERM", "truecolor")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor with COLORTERM=truecolor, got %v", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-direct")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor with TERM=xterm-direct, got %v", got)
	}
}
