package wkt

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/georef/wkt/unit"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{6378137, "6378137"},
		{-123, "-123"},
		{0.5, "0.5"},
		{298.257223563, "298.257223563"},
		{0.0174532925199433, "0.0174532925199433"},
		{0.00001, "0.00001"},
		{500000, "500000"},
		{1e20, "1e+20"},
		{5e-15, "5e-15"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatNumber(tt.value); got != tt.want {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func testDatum() *GeodeticDatum {
	return &GeodeticDatum{
		Name: "WGS 84",
		Ellipsoid: &Ellipsoid{
			Name:              "WGS 84",
			SemiMajorAxis:     6378137,
			InverseFlattening: 298.257223563,
		},
	}
}

func TestFormatSingleLine(t *testing.T) {
	f := NewFormatter(WKT1, nil, SingleLine)
	f.Append(testDatum())
	want := `DATUM["WGS 84",SPHEROID["WGS 84",6378137,298.257223563]]`
	if got := f.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestFormatIndented(t *testing.T) {
	f := NewFormatter(WKT1, nil, 2)
	f.Append(testDatum())
	want := "DATUM[\"WGS 84\",\n  SPHEROID[\"WGS 84\", 6378137, 298.257223563]]"
	if got := f.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestKeywordCase(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		kc         KeywordCase
		want       string
	}{
		{"wkt1 default is upper", WKT1, CaseDefault, "DATUM["},
		{"wkt2 default is camel", WKT2, CaseDefault, "Datum["},
		{"wkt2 forced upper", WKT2, UpperCase, "DATUM["},
		{"wkt1 forced camel", WKT1, CamelCase, "Datum["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.convention, nil, SingleLine)
			f.SetKeywordCase(tt.kc)
			f.Append(testDatum())
			if got := f.String(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("got %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestAppendStringQuoting(t *testing.T) {
	f := NewFormatter(WKT2, nil, SingleLine)
	f.AppendString(`he said "hi"`, ElementName)
	if got, want := f.String(), `"he said ""hi"""`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTransliteration(t *testing.T) {
	t.Run("names are transliterated", func(t *testing.T) {
		f := NewFormatter(WKT2, nil, SingleLine)
		f.AppendString("Côte d'Ivoire", ElementName)
		if got, want := f.String(), `"Cote d'Ivoire"`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
	t.Run("remarks are preserved", func(t *testing.T) {
		f := NewFormatter(WKT2, nil, SingleLine)
		f.AppendString("Côte d'Ivoire", ElementRemarks)
		if got, want := f.String(), `"Côte d'Ivoire"`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
	t.Run("unicode mode preserves everything", func(t *testing.T) {
		f := NewFormatter(WKT2, nil, SingleLine)
		f.SetEncoding(EncodingUnicode)
		f.AppendString("Côte d'Ivoire", ElementName)
		if got, want := f.String(), `"Côte d'Ivoire"`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
	t.Run("ligatures", func(t *testing.T) {
		if got := transliterate("Ærøskøbing"); got != "AEroskobing" {
			t.Errorf("transliterate = %q, want AEroskobing", got)
		}
	})
}

func TestAppendUnitKeywords(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		u          unit.Unit
		want       string
	}{
		{"wkt2 angular", WKT2, unit.Degree, `AngleUnit["degree",0.0174532925199433]`},
		{"wkt2 linear", WKT2, unit.Metre, `LengthUnit["metre",1]`},
		{"wkt2 scale", WKT2, unit.Unity, `ScaleUnit["unity",1]`},
		{"wkt2 temporal", WKT2, unit.Second, `TimeUnit["second",1]`},
		{"wkt1 always UNIT", WKT1, unit.Degree, `UNIT["degree",0.0174532925199433]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.convention, nil, SingleLine)
			f.AppendUnit(tt.u)
			if got := f.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppendDate(t *testing.T) {
	f := NewFormatter(WKT2, nil, SingleLine)
	f.AppendDate(time.Date(2014, 5, 14, 0, 0, 0, 0, time.UTC))
	if got := f.String(); got != "2014-05-14" {
		t.Errorf("midnight date = %q, want 2014-05-14", got)
	}

	f.Reset()
	f.AppendDate(time.Date(2014, 5, 14, 10, 30, 0, 0, time.UTC))
	if got := f.String(); got != "2014-05-14T10:30:00Z" {
		t.Errorf("date-time = %q, want 2014-05-14T10:30:00Z", got)
	}
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColors(t *testing.T) {
	plain := NewFormatter(WKT1, nil, SingleLine)
	plain.Append(testDatum())

	colored := &Formatter{}
	colored.Configure(WKT1, nil, DefaultColors(), SingleLine)
	colored.Append(testDatum())

	got := colored.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatal("colored output contains no escape sequences")
	}
	if stripped := ansiPattern.ReplaceAllString(got, ""); stripped != plain.String() {
		t.Errorf("stripped = %s\nplain    = %s", stripped, plain.String())
	}
}

func TestSetInvalidWKT(t *testing.T) {
	f := NewFormatter(WKT2, nil, SingleLine)
	f.Append(&ParamTransform{Method: "Affine"})
	keyword, _ := f.InvalidElement()
	if keyword != "PARAM_MT" {
		t.Errorf("InvalidElement() = %q, want PARAM_MT", keyword)
	}
	if f.String() == "" {
		t.Error("lenient formatting produced no text")
	}

	f.Reset()
	if keyword, _ := f.InvalidElement(); keyword != "" {
		t.Errorf("InvalidElement() after Reset = %q, want empty", keyword)
	}
}

func TestAlternateSymbols(t *testing.T) {
	symbols, err := NewSymbols(WithBrackets(Bracket{'(', ')'}))
	if err != nil {
		t.Fatal(err)
	}
	f := NewFormatter(WKT1, symbols, SingleLine)
	f.Append(testDatum())
	want := `DATUM("WGS 84",SPHEROID("WGS 84",6378137,298.257223563))`
	if got := f.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
