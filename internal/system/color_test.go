package system

import (
	"regexp"
	"testing"
)

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHSLHex(t *testing.T) {
	tests := []struct {
		c    HSL
		want string
	}{
		{HSL{0, 1, 0.5}, "#ff0000"},
		{HSL{120, 1, 0.5}, "#00ff00"},
		{HSL{240, 1, 0.5}, "#0000ff"},
		{HSL{0, 0, 1}, "#ffffff"},
		{HSL{0, 0, 0}, "#000000"},
		{HSL{360, 1, 0.5}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestGeneratedColorsAreValidHex(t *testing.T) {
	d := Generate(2024)
	colors := []HSL{d.Star.Color, d.Star.LightColor}
	for _, p := range d.Planets {
		colors = append(colors, p.Color)
		if p.Ring != nil {
			colors = append(colors, p.Ring.Color)
		}
		if p.Atmosphere != nil {
			colors = append(colors, p.Atmosphere.Color)
		}
	}
	for _, c := range colors {
		if hex := c.Hex(); !hexRe.MatchString(hex) {
			t.Errorf("%+v.Hex() = %q", c, hex)
		}
	}
}

func TestStarLightIsPaler(t *testing.T) {
	surface := HSL{H: 40, S: 0.9, L: 0.55}
	light := starLight(surface)
	if light.H != surface.H {
		t.Errorf("light hue = %v, want %v", light.H, surface.H)
	}
	if light.S >= surface.S || light.L <= surface.L {
		t.Errorf("light %+v is not paler than surface %+v", light, surface)
	}
}

func TestLighter(t *testing.T) {
	c := HSL{H: 200, S: 0.6, L: 0.9}.Lighter(0.2)
	if c.L != 1 {
		t.Errorf("L = %v, want clamp to 1", c.L)
	}
	if c.S >= 0.6 {
		t.Errorf("S = %v, want below 0.6", c.S)
	}
}

func TestBlend(t *testing.T) {
	a := HSL{0, 0, 0.1}
	b := HSL{0, 0, 0.9}
	mid := Blend(a, b, 0.5)
	if !hexRe.MatchString(mid) {
		t.Fatalf("Blend = %q, want hex", mid)
	}
	if mid == a.Hex() || mid == b.Hex() {
		t.Errorf("Blend midpoint %s equals an endpoint", mid)
	}
}
