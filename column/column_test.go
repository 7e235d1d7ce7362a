package column

import (
	"math"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		value any
		want  Kind
	}{
		{1.5, Float64},
		{int64(3), Int64},
		{true, Bool},
		{[]float64{1, 2}, Float64List},
		{[]Vec4{{Px: 1}}, Vec4List},
		{"nope", Unknown},
		{int32(1), Unknown},
	}
	for _, c := range cases {
		if got := KindOf(c.value); got != c.want {
			t.Errorf("KindOf(%T) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Float64.String() != "float64" {
		t.Errorf("unexpected name %q", Float64.String())
	}
	if Vec4List.String() != "[]Vec4" {
		t.Errorf("unexpected name %q", Vec4List.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("unexpected name for invalid kind: %q", Kind(99).String())
	}
}

func TestAsFloat64(t *testing.T) {
	if f, ok := AsFloat64(2.5); !ok || f != 2.5 {
		t.Fatalf("AsFloat64(2.5) = %v, %v", f, ok)
	}
	if f, ok := AsFloat64(int64(7)); !ok || f != 7 {
		t.Fatalf("AsFloat64(int64(7)) = %v, %v", f, ok)
	}
	if _, ok := AsFloat64(true); ok {
		t.Fatal("bool should not coerce to float64")
	}
	if _, ok := AsFloat64([]float64{1}); ok {
		t.Fatal("sequence should not coerce to float64")
	}
}

func TestNormalize(t *testing.T) {
	if v := Normalize(3); v != int64(3) {
		t.Errorf("Normalize(int) = %T(%v)", v, v)
	}
	if v := Normalize(int32(3)); v != int64(3) {
		t.Errorf("Normalize(int32) = %T(%v)", v, v)
	}
	if v := Normalize(float32(1.5)); v != float64(1.5) {
		t.Errorf("Normalize(float32) = %T(%v)", v, v)
	}
	if v := Normalize(true); v != true {
		t.Errorf("Normalize(bool) = %v", v)
	}
}

func TestVec4Kinematics(t *testing.T) {
	v := Vec4{Px: 3, Py: 4, Pz: 0, E: 5}
	if got := v.Pt(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Pt = %v, want 5", got)
	}
	if got := v.P(); math.Abs(got-5) > 1e-12 {
		t.Errorf("P = %v, want 5", got)
	}
	if got := v.Eta(); math.Abs(got) > 1e-12 {
		t.Errorf("Eta = %v, want 0", got)
	}
	if got := v.M(); math.Abs(got) > 1e-9 {
		t.Errorf("M = %v, want 0 for lightlike vector", got)
	}
}

func TestVec4EtaBeamAxis(t *testing.T) {
	up := Vec4{Pz: 10, E: 10}
	if !math.IsInf(up.Eta(), 1) {
		t.Errorf("Eta along +z = %v, want +Inf", up.Eta())
	}
	down := Vec4{Pz: -10, E: 10}
	if !math.IsInf(down.Eta(), -1) {
		t.Errorf("Eta along -z = %v, want -Inf", down.Eta())
	}
}

func TestFromCylindrical(t *testing.T) {
	pt, eta, phi := 4.0, 1.2, 0.7
	v := FromCylindrical(pt, eta, phi, 10)
	if got := v.Pt(); math.Abs(got-pt) > 1e-9 {
		t.Errorf("Pt = %v, want %v", got, pt)
	}
	if got := v.Eta(); math.Abs(got-eta) > 1e-9 {
		t.Errorf("Eta = %v, want %v", got, eta)
	}
	if got := v.Phi(); math.Abs(got-phi) > 1e-9 {
		t.Errorf("Phi = %v, want %v", got, phi)
	}
}
