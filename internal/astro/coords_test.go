package astro

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{TwoPi + 1, 1},
		{-1, TwoPi - 1},
		{-TwoPi * 3.5, math.Pi},
		{1e6, math.Mod(1e6, TwoPi)},
	}

	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("WrapAngle(%v) = %v out of [0,2π)", tt.in, got)
		}
	}
}

func TestWrapAngleTinyNegative(t *testing.T) {
	got := WrapAngle(-1e-18)
	if got < 0 || got >= TwoPi {
		t.Errorf("WrapAngle(-1e-18) = %v out of range", got)
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if back := RadToDeg(got); math.Abs(back-tt.deg) > 1e-10 {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v", tt.deg, back)
		}
	}
}

func TestPlaneLongitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
	}{
		{Vec3{1, 0, 0}, 0},
		{Vec3{0, 0, -1}, 90},
		{Vec3{-1, 0, 0}, 180},
		{Vec3{0, 0, 1}, 270},
		{Vec3{1, 5, -1}, 45},
	}

	for _, tt := range tests {
		got := PlaneLongitude(tt.v)
		if math.Abs(got-tt.wantDeg) > 0.01 {
			t.Errorf("PlaneLongitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}

func TestPlaneLatitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
	}{
		{Vec3{1, 0, 0}, 0},
		{Vec3{0, 1, 0}, 90},
		{Vec3{0, -1, 0}, -90},
		{Vec3{1, 1, 0}, 45},
		{Vec3{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		got := PlaneLatitude(tt.v)
		if math.Abs(got-tt.wantDeg) > 0.01 {
			t.Errorf("PlaneLatitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}
