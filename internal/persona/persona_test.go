package persona

import (
	"reflect"
	"testing"
)

// Every type in All() must resolve to a fully populated catalog entry.
func TestCatalogComplete(t *testing.T) {
	for _, typ := range All() {
		p, ok := Get(typ)
		if !ok {
			t.Fatalf("Get(%q) missing from catalog", typ)
		}
		if p.Type != typ {
			t.Errorf("persona %q has mismatched Type %q", typ, p.Type)
		}
		if p.Name == "" || p.Title == "" || p.Perspective == "" || p.QuestionStyle == "" {
			t.Errorf("persona %q has empty profile fields", typ)
		}
		if len(p.FocusAreas) < 3 {
			t.Errorf("persona %q has %d focus areas, want at least 3", typ, len(p.FocusAreas))
		}
		if len(p.KeyConcerns) == 0 {
			t.Errorf("persona %q has no key concerns", typ)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []Type
	}{
		{"ceo,cfo", []Type{CEO, CFO}},
		{"CEO, Cfo", []Type{CEO, CFO}},
		{"product", []Type{VPProduct}},
		{"security", []Type{CISO}},
		{"ops,vp-operations", []Type{VPOperations, VPOperations}},
		{"", nil},
		{",,", nil},
	}
	for _, tt := range tests {
		got := ParseList(tt.in, nil)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseListWarnsOnUnknown(t *testing.T) {
	var warned []string
	got := ParseList("bogus,cfo", func(token string) {
		warned = append(warned, token)
	})
	if !reflect.DeepEqual(got, []Type{CFO}) {
		t.Errorf("ParseList = %v, want [cfo]", got)
	}
	if !reflect.DeepEqual(warned, []string{"bogus"}) {
		t.Errorf("warned = %v, want [bogus]", warned)
	}
}

func TestParseUserType(t *testing.T) {
	tests := []struct {
		in   string
		want UserType
		ok   bool
	}{
		{"sales", SalesEngineer, true},
		{"PM", ProductManager, true},
		{"dev", Developer, true},
		{"sa", SolutionsArchitect, true},
		{"astronaut", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseUserType(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseUserType(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUserTypeDefaults(t *testing.T) {
	for _, ut := range []UserType{SalesEngineer, ProductManager, Developer, TechnicalWriter, Marketing, SolutionsArchitect} {
		defaults := UserTypeDefaults(ut)
		if len(defaults) == 0 {
			t.Errorf("UserTypeDefaults(%q) is empty", ut)
		}
		for _, typ := range defaults {
			if _, ok := Get(typ); !ok {
				t.Errorf("UserTypeDefaults(%q) references unknown persona %q", ut, typ)
			}
		}
	}
}

func TestDefaultSelection(t *testing.T) {
	if got := DefaultSelection(); !reflect.DeepEqual(got, []Type{CEO, CTO}) {
		t.Errorf("DefaultSelection() = %v, want [ceo cto]", got)
	}
}
