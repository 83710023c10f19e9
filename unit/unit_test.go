package unit

import (
	"errors"
	"testing"
)

func TestParseAliases(t *testing.T) {
	tests := []struct {
		symbol string
		want   Unit
	}{
		{"degree", Degree},
		{"Degree", Degree},
		{"DEGREES", Degree},
		{"°", Degree},
		{"rad", Radian},
		{"m", Metre},
		{"meter", Metre},
		{"metre", Metre},
		{"km", Kilometre},
		{"ft", Foot},
		{"US survey foot", USFoot},
		{"grad", Grad},
		{"gon", Grad},
		{"arc-second", ArcSecond},
		{"unity", Unity},
		{"", Unity},
		{"ppm", PPM},
		{"s", Second},
		{"day", Day},
		{"year", Year},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := Parse(tt.symbol)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("furlong")
	if err == nil {
		t.Fatal("Parse(furlong) succeeded, want error")
	}
	var unknown *UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %T, want *UnknownError", err)
	}
	if unknown.Symbol != "furlong" {
		t.Errorf("Symbol = %q, want %q", unknown.Symbol, "furlong")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Angular, "angular"},
		{Linear, "linear"},
		{Scale, "scale"},
		{Temporal, "temporal"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !(Unit{}).IsZero() {
		t.Error("zero unit is not IsZero")
	}
	if Degree.IsZero() {
		t.Error("Degree reported IsZero")
	}
}

func TestFactors(t *testing.T) {
	if Degree.Factor != 0.0174532925199433 {
		t.Errorf("Degree.Factor = %v", Degree.Factor)
	}
	if Metre.Factor != 1 {
		t.Errorf("Metre.Factor = %v", Metre.Factor)
	}
	if Foot.Factor != 0.3048 {
		t.Errorf("Foot.Factor = %v", Foot.Factor)
	}
}
