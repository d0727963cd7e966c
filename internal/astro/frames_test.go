package astro

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit y", Vec3{0, 1, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, 0, -4}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"unit x", Vec3{5, 0, 0}, Vec3{1, 0, 0}},
		{"unit z", Vec3{0, 0, 3}, Vec3{0, 0, 1}},
		{"diagonal", Vec3{1, 0, 1}, Vec3{1 / math.Sqrt(2), 0, 1 / math.Sqrt(2)}},
		{"zero", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalized(); !vecNear(got, tt.want, 1e-10) {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationApply(t *testing.T) {
	quarter := math.Pi / 2

	tests := []struct {
		name string
		rot  Rotation
		in   Vec3
		want Vec3
	}{
		{"y quarter turn moves +X to -Z", Rotation{AxisY, quarter}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"y quarter turn moves +Z to +X", Rotation{AxisY, quarter}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"x quarter turn moves +Z to -Y", Rotation{AxisX, quarter}, Vec3{0, 0, 1}, Vec3{0, -1, 0}},
		{"x quarter turn keeps +X", Rotation{AxisX, quarter}, Vec3{1, 0, 0}, Vec3{1, 0, 0}},
		{"z quarter turn moves +X to +Y", Rotation{AxisZ, quarter}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"zero angle", Rotation{AxisY, 0}, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rot.Apply(tt.in); !vecNear(got, tt.want, 1e-12) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{3, -2, 7}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for a := -3.0; a <= 3; a += 0.5 {
			got := Rotation{axis, a}.Apply(v)
			if math.Abs(got.Norm()-v.Norm()) > 1e-12 {
				t.Errorf("axis %s angle %v changed length: %v", axis, a, got.Norm())
			}
		}
	}
}

func TestRotationsApplyInnermostFirst(t *testing.T) {
	chain := Rotations{
		{AxisY, math.Pi / 2}, // parent
		{AxisX, math.Pi / 2}, // child
	}
	v := Vec3{0, 0, 1}

	// Child first: X turns +Z into -Y, then Y leaves -Y alone.
	want := Rotation{AxisY, math.Pi / 2}.Apply(Rotation{AxisX, math.Pi / 2}.Apply(v))
	if got := chain.Apply(v); !vecNear(got, want, 1e-12) {
		t.Errorf("chain.Apply = %v, want %v", got, want)
	}
	if !vecNear(want, Vec3{0, -1, 0}, 1e-12) {
		t.Errorf("expected -Y, got %v", want)
	}

	// Reversed order yields a different vector.
	reversed := Rotations{chain[1], chain[0]}
	if vecNear(reversed.Apply(v), want, 1e-6) {
		t.Error("rotation order should matter")
	}
}

func TestProjectTopDown(t *testing.T) {
	cfg := DefaultProjectionConfig(10)

	tests := []struct {
		name      string
		v         Vec3
		wantAngle float64 // expected screen angle in degrees
		wantR     float64
	}{
		{"+X", Vec3{1, 0, 0}, 0, 1},
		{"-Z is screen up", Vec3{0, 0, -1}, 90, 1},
		{"-X", Vec3{-1, 0, 0}, 180, 1},
		{"+Z is screen down", Vec3{0, 0, 1}, -90, 1},
		{"height ignored for angle", Vec3{10, 2, 0}, 0, math.Sqrt(104)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(tt.v, cfg)

			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			angleDiff := math.Abs(gotAngle - tt.wantAngle)
			if angleDiff > 180 {
				angleDiff = 360 - angleDiff
			}
			if angleDiff > 0.1 {
				t.Errorf("angle = %.2f°, want %.2f°", gotAngle, tt.wantAngle)
			}
			if math.Abs(got.R-tt.wantR) > 0.01 {
				t.Errorf("R = %.4f, want %.4f", got.R, tt.wantR)
			}
			if got.H != tt.v.Y {
				t.Errorf("H = %v, want %v", got.H, tt.v.Y)
			}
		})
	}
}

func TestScaleModes(t *testing.T) {
	extent := 100.0

	tests := []struct {
		name string
		mode ScaleMode
		r    float64
		want float64
	}{
		{"linear keeps distance", ScaleLinear, 25, 25},
		{"sqrt at extent", ScaleSqrt, 100, 100},
		{"sqrt compresses", ScaleSqrt, 25, 50},
		{"log at extent", ScaleLog, 100, 100},
		{"log origin", ScaleLog, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ProjectionConfig{Scale: 1, Mode: tt.mode, Extent: extent}
			got := ProjectTopDown(Vec3{X: tt.r}, cfg)
			if math.Abs(got.X-tt.want) > 1e-9 {
				t.Errorf("X = %v, want %v", got.X, tt.want)
			}
			if math.Abs(got.Y) > 1e-10 {
				t.Errorf("Y should be ~0 for X-axis input, got %v", got.Y)
			}
		})
	}
}

func TestScaleModesMonotonic(t *testing.T) {
	for _, mode := range []ScaleMode{ScaleLinear, ScaleSqrt, ScaleLog} {
		cfg := ProjectionConfig{Scale: 1, Mode: mode, Extent: 80}
		prev := -1.0
		for r := 0.0; r <= 200; r += 5 {
			got := scaleRadius(r, cfg)
			if got <= prev {
				t.Errorf("%s: scaleRadius not increasing at r=%v", mode, r)
			}
			prev = got
		}
	}
}

func TestParseScaleMode(t *testing.T) {
	tests := []struct {
		in     string
		want   ScaleMode
		wantOK bool
	}{
		{"linear", ScaleLinear, true},
		{"LIN", ScaleLinear, true},
		{" sqrt ", ScaleSqrt, true},
		{"log", ScaleLog, true},
		{"cubic", ScaleLinear, false},
	}
	for _, tt := range tests {
		got, ok := ParseScaleMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseScaleMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestScaleModeNext(t *testing.T) {
	m := ScaleLinear
	seen := []ScaleMode{m}
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	want := []ScaleMode{ScaleLinear, ScaleSqrt, ScaleLog, ScaleLinear}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}
