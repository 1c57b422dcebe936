package bounce

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{ColorRed, color.RGBA{255, 0, 0, 255}},
		{Color{0.5, 0.25, 1.5, -1}, color.RGBA{128, 64, 255, 0}},
		{RGB8(102, 0, 102, 255), color.RGBA{102, 0, 102, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.RGBA(); got != tt.want {
			t.Errorf("%v.RGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMixTruncates(t *testing.T) {
	got := Mix(ColorRed, ColorBlue).RGBA()
	want := color.RGBA{127, 0, 127, 255}
	if got != want {
		t.Errorf("Mix(red, blue) = %v, want %v", got, want)
	}
	if Mix(ColorCyan, ColorCyan) != ColorCyan {
		t.Error("mixing a color with itself should return it")
	}
}

func TestVec2Ops(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{1, -2}
	if a.Add(b) != (Vec2{4, 2}) || a.Sub(b) != (Vec2{2, 6}) || a.Scale(2) != (Vec2{6, 8}) {
		t.Error("arithmetic mismatch")
	}
	if a.Dot(b) != -5 || a.LenSq() != 25 || a.Len() != 5 {
		t.Error("products mismatch")
	}
}

func TestRectContainsRect(t *testing.T) {
	world := Rect{0, 0, 800, 600}
	tests := []struct {
		name   string
		r      Rect
		expect bool
	}{
		{"inside", Rect{10, 10, 80, 80}, true},
		{"flush top-left", Rect{0, 0, 80, 80}, true},
		{"flush bottom-right", Rect{720, 520, 80, 80}, true},
		{"past right", Rect{721, 0, 80, 80}, false},
		{"above", Rect{0, -1, 80, 80}, false},
		{"larger", Rect{0, 0, 900, 80}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := world.ContainsRect(tt.r); got != tt.expect {
				t.Errorf("ContainsRect(%v) = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}
