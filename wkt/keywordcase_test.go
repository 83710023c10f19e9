package wkt

import (
	"strings"
	"testing"
)

func TestSpellCamel(t *testing.T) {
	tests := []struct{ keyword, want string }{
		{"GEOGCRS", "GeogCRS"},
		{"GEOGCS", "GeogCS"},
		{"PROJCS", "ProjCS"},
		{"SPHEROID", "Spheroid"},
		{"PROJECTION", "Projection"},
		{"VERT_DATUM", "Vert_Datum"},
		{"COMPD_CS", "Compd_CS"},
		{"PARAM_MT", "Param_MT"},
		{"TOWGS84", "ToWGS84"},
	}
	for _, tt := range tests {
		if got := spell(tt.keyword, false); got != tt.want {
			t.Errorf("spell(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestCamelCaseLegacyKeywords(t *testing.T) {
	f := NewFormatter(WKT1, nil, SingleLine)
	f.SetKeywordCase(CamelCase)
	f.Append(testDatum())
	got := f.String()
	if !strings.HasPrefix(got, "Datum[") {
		t.Errorf("got %q, want a Datum prefix", got)
	}
	if !strings.Contains(got, "Spheroid[") {
		t.Errorf("got %q, want a camel-case Spheroid keyword", got)
	}
}
