package graphics

import (
	"image/color"
	"testing"
)

func TestColor_Components(t *testing.T) {
	c := Color(0x80FF4000)
	if c.A() != 0x80 || c.R() != 0xFF || c.G() != 0x40 || c.B() != 0x00 {
		t.Errorf("components of %#x: %d %d %d %d", uint32(c), c.A(), c.R(), c.G(), c.B())
	}
	if got := RGB(0xFF, 0x40, 0).WithAlpha8(0x80); got != c {
		t.Errorf("RGB.WithAlpha8 = %#x, want %#x", uint32(got), uint32(c))
	}
	if got := RGBA(0xFF, 0x40, 0, 1).Alpha(); got != 1 {
		t.Errorf("Alpha = %v, want 1", got)
	}
	if got := ColorBlack.WithAlpha(2); got != ColorBlack {
		t.Errorf("alpha above 1 should clamp, got %#x", uint32(got))
	}
}

func TestColor_Packed(t *testing.T) {
	if got := FromPacked(-0x10000); got != ColorRed.WithAlpha8(0xFF) {
		t.Errorf("FromPacked(-0x10000) = %#x", uint32(got))
	}
	if got := ColorRed.Packed(); got != -0x10000 {
		t.Errorf("Packed = %d", got)
	}
	if got := FromPacked(0x7F00FF00); got != RGBA8(0, 0xFF, 0, 0x7F) {
		t.Errorf("FromPacked(0x7F00FF00) = %#x", uint32(got))
	}
}

func TestColor_ImageColor(t *testing.T) {
	c := Color(0x80FF8000)
	if got := c.NRGBA(); got != (color.NRGBA{R: 0xFF, G: 0x80, B: 0, A: 0x80}) {
		t.Errorf("NRGBA = %+v", got)
	}
	if got := FromColor(c); got != c {
		t.Errorf("round trip through image/color = %#x, want %#x", uint32(got), uint32(c))
	}
	// premultiplied input is un-premultiplied
	if got := FromColor(color.RGBA{R: 64, A: 128}); got != RGBA8(127, 0, 0, 128) {
		t.Errorf("FromColor(premultiplied) = %#x", uint32(got))
	}
	var _ color.Color = ColorWhite
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#3366ff", 0xFF3366FF, false},
		{"#803366ff", 0x803366FF, false},
		{"#00000000", ColorTransparent, false},
		{"red", 0, true},
		{"#12345", 0, true},
		{"#zzzzzz", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestColor_Hex(t *testing.T) {
	if got := ColorRed.Hex(); got != "#ff0000" {
		t.Errorf("opaque Hex = %q", got)
	}
	if got := Color(0x80FF0000).String(); got != "#80ff0000" {
		t.Errorf("translucent Hex = %q", got)
	}
}
