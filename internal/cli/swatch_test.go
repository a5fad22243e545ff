package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseColourHexRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"with hash", "#c08040", "#c08040"},
		{"without hash", "c08040", "#c08040"},
		{"black", "#000000", "#000000"},
		{"white", "#ffffff", "#ffffff"},
		{"primary red", "#ff0000", "#ff0000"},
		{"near-grey", "#808081", "#808081"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := parseColour(tt.in)
			if err != nil {
				t.Fatalf("parseColour(%q): %v", tt.in, err)
			}
			if got := hexOf(props); got != tt.want {
				t.Errorf("round trip of %q: got %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColourRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12345", "nothex", "#gg0000"} {
		if _, err := parseColour(in); err == nil {
			t.Errorf("parseColour(%q): expected an error", in)
		}
	}
}

func TestInspectCommandOutput(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		contains []string
	}{
		{"grey has no hue", "#808080", []string{"none (grey)", "greyness: 1.000000"}},
		{"full red", "#ff0000", []string{"red", "chroma:   1.000000"}},
		{"mid warmth for grey", "#404040", []string{"warmth:   0.500000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"inspect", tt.arg})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("inspect %s: %v", tt.arg, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("inspect %s output missing %q:\n%s", tt.arg, want, out.String())
				}
			}
		})
	}
}

func TestAdjustCommandRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad rotation policy", []string{"adjust", "--rotation-policy", "hue", "#ff0000"}},
		{"zero steps", []string{"adjust", "--steps", "0", "#ff0000"}},
		{"bad colour", []string{"adjust", "zzz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
