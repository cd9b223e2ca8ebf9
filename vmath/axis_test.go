package vmath

import "testing"

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
		ok   bool
	}{
		{"translate-x", TranslateX, true},
		{" Translate-Y ", TranslateY, true},
		{"rotate-z", RotateZ, true},
		{"tz", TranslateZ, true},
		{"rx", RotateX, true},
		{"ry", RotateY, true},
		{"tw", 0, false},
		{"", 0, false},
		{"scale-x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAxis(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseAxis(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAxisSet(t *testing.T) {
	s := Axes(TranslateY, RotateX)
	if !s.Has(TranslateY) || !s.Has(RotateX) || s.Has(TranslateX) {
		t.Errorf("unexpected membership in %v", s)
	}
	if s.Without(TranslateY).Has(TranslateY) {
		t.Error("Without did not remove the axis")
	}
	if got := s.String(); got != "translate-y|rotate-x" {
		t.Errorf("String() = %q", got)
	}
	if !AxisSet(0).Empty() || AxisSet(0).String() != "none" {
		t.Error("zero set should be empty")
	}
	for i := 0; i < 3; i++ {
		if !LockTranslation.Has(TranslationAxis(i)) || LockRotation.Has(TranslationAxis(i)) {
			t.Errorf("translation mask mismatch at %d", i)
		}
	}
}
