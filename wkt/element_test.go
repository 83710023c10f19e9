package wkt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func mustParseTree(t *testing.T, text string) *Element {
	t.Helper()
	el, err := ParseTree(text, nil)
	if err != nil {
		t.Fatalf("ParseTree(%q) error: %v", text, err)
	}
	return el
}

func TestParseTreeSimple(t *testing.T) {
	el := mustParseTree(t, `DATUM["WGS 84",SPHEROID["WGS 84",6378137,298.257223563]]`)
	if el.Keyword() != "DATUM" {
		t.Errorf("Keyword() = %q, want DATUM", el.Keyword())
	}
	if !el.IsBracketed() {
		t.Error("IsBracketed() = false")
	}
	if len(el.children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(el.children))
	}
	if name, ok := el.children[0].(string); !ok || name != "WGS 84" {
		t.Errorf("children[0] = %#v, want \"WGS 84\"", el.children[0])
	}
	sub, ok := el.children[1].(*Element)
	if !ok {
		t.Fatalf("children[1] = %T, want *Element", el.children[1])
	}
	if sub.Keyword() != "SPHEROID" || len(sub.children) != 3 {
		t.Errorf("nested element = %s with %d children", sub.Keyword(), len(sub.children))
	}
	if v, ok := sub.children[1].(float64); !ok || v != 6378137 {
		t.Errorf("semi-major = %#v, want 6378137", sub.children[1])
	}
}

func TestParseTreeBracketVariants(t *testing.T) {
	tests := []string{
		`UNIT["degree",0.0174532925199433]`,
		`UNIT("degree",0.0174532925199433)`,
		` UNIT [ "degree" , 0.0174532925199433 ] `,
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			el := mustParseTree(t, text)
			if el.Keyword() != "UNIT" || len(el.children) != 2 {
				t.Errorf("got %s with %d children", el.Keyword(), len(el.children))
			}
		})
	}
}

func TestParseTreeUnbalanced(t *testing.T) {
	text := `DATUM["WGS 84",SPHEROID["WGS 84",6378137,298.257223563]`
	_, err := ParseTree(text, nil)
	if err == nil {
		t.Fatal("ParseTree succeeded on unbalanced input")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.Offset != len(text) {
		t.Errorf("Offset = %d, want %d", pe.Offset, len(text))
	}
	if !strings.Contains(pe.Error(), "DATUM") {
		t.Errorf("Error() = %q, want the unclosed keyword named", pe.Error())
	}
}

func TestParseTreeMismatchedBrackets(t *testing.T) {
	if _, err := ParseTree(`UNIT["m",1)`, nil); err == nil {
		t.Error("ParseTree accepted a close bracket from the wrong pair")
	}
}

func TestParseTreeTrailingText(t *testing.T) {
	_, err := ParseTree(`UNIT["m",1] leftover`, nil)
	if err == nil {
		t.Fatal("ParseTree succeeded with trailing text")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
}

func TestQuotedStringEscape(t *testing.T) {
	el := mustParseTree(t, `REMARK["he said ""hi"" twice"]`)
	got, err := el.PullString("remark")
	if err != nil {
		t.Fatal(err)
	}
	if want := `he said "hi" twice`; got != want {
		t.Errorf("string = %q, want %q", got, want)
	}
}

func TestQuotedStringUnterminated(t *testing.T) {
	_, err := ParseTree(`REMARK["no end]`, nil)
	if err == nil {
		t.Fatal("ParseTree succeeded on unterminated string")
	}
}

func TestNumberForms(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{`N[0]`, 0},
		{`N[-12.5]`, -12.5},
		{`N[+3]`, 3},
		{`N[.25]`, 0.25},
		{`N[1.5e3]`, 1500},
		{`N[1.5E3]`, 1500},
		{`N[1.5e+3]`, 1500},
		{`N[2E-4]`, 0.0002},
		{`N[6378137]`, 6378137},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			el := mustParseTree(t, tt.text)
			got, err := el.PullDouble("value")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateValues(t *testing.T) {
	el := mustParseTree(t, `TIMEEXTENT[2013-06-01,2014-01-01T10:30:00Z]`)
	start, err := el.PullDate("start")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	end, err := el.PullDate("end")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2014, 1, 1, 10, 30, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestPullElementModes(t *testing.T) {
	tree := func(t *testing.T) *Element {
		return mustParseTree(t, `A[B[1],C[2]]`)
	}

	t.Run("first mismatch fails", func(t *testing.T) {
		el := tree(t)
		if _, err := el.PullElement(First, "C"); err == nil {
			t.Error("First mode matched a non-leading child")
		}
	})
	t.Run("first match", func(t *testing.T) {
		el := tree(t)
		sub, err := el.PullElement(First, "B")
		if err != nil || sub == nil || sub.Keyword() != "B" {
			t.Errorf("got %v, %v", sub, err)
		}
	})
	t.Run("optional searches ahead", func(t *testing.T) {
		el := tree(t)
		sub, err := el.PullElement(Optional, "C")
		if err != nil || sub == nil || sub.Keyword() != "C" {
			t.Errorf("got %v, %v", sub, err)
		}
	})
	t.Run("optional absent", func(t *testing.T) {
		el := tree(t)
		sub, err := el.PullElement(Optional, "X")
		if err != nil || sub != nil {
			t.Errorf("got %v, %v, want nil, nil", sub, err)
		}
	})
	t.Run("mandatory absent fails", func(t *testing.T) {
		el := tree(t)
		if _, err := el.PullElement(Mandatory, "X"); err == nil {
			t.Error("Mandatory mode did not fail on absence")
		}
	})
	t.Run("case insensitive", func(t *testing.T) {
		el := tree(t)
		sub, err := el.PullElement(Mandatory, "b")
		if err != nil || sub == nil {
			t.Errorf("got %v, %v", sub, err)
		}
	})
	t.Run("pull removes the child", func(t *testing.T) {
		el := tree(t)
		if _, err := el.PullElement(Mandatory, "B"); err != nil {
			t.Fatal(err)
		}
		if sub, _ := el.PullElement(Optional, "B"); sub != nil {
			t.Error("pulled child still present")
		}
	})
}

func TestPullVoidElement(t *testing.T) {
	el := mustParseTree(t, `AXIS["Lat",NORTH]`)
	if _, err := el.PullString("name"); err != nil {
		t.Fatal(err)
	}
	dir, err := el.PullVoidElement("direction")
	if err != nil {
		t.Fatal(err)
	}
	if dir != "NORTH" {
		t.Errorf("direction = %q, want NORTH", dir)
	}
}

func TestPullInteger(t *testing.T) {
	el := mustParseTree(t, `ORDER[2]`)
	n, err := el.PullInteger("order")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("order = %d, want 2", n)
	}

	el = mustParseTree(t, `ORDER[2.5]`)
	if _, err := el.PullInteger("order"); err == nil {
		t.Error("PullInteger accepted a fractional value")
	}
}

func TestCloseRecordsLeftovers(t *testing.T) {
	el := mustParseTree(t, `DATUM["d",EXTENSION["PROJ4_GRIDS","x"],FOO[1]]`)
	if _, err := el.PullString("name"); err != nil {
		t.Fatal(err)
	}
	ignored := make(map[string][]string)
	el.Close(ignored)
	if got := ignored["EXTENSION"]; len(got) != 1 || got[0] != "DATUM" {
		t.Errorf(`ignored["EXTENSION"] = %v, want [DATUM]`, got)
	}
	if got := ignored["FOO"]; len(got) != 1 || got[0] != "DATUM" {
		t.Errorf(`ignored["FOO"] = %v, want [DATUM]`, got)
	}
}

func TestElementString(t *testing.T) {
	el := mustParseTree(t, `AXIS["Lat",NORTH]`)
	got := el.String()
	for _, want := range []string{"AXIS", `"Lat"`, "NORTH"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(got, "AXIS\n") {
		t.Errorf("String() = %q, want the keyword on the first line", got)
	}
}
