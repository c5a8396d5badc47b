package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/exec-review/cli/internal/persona"
	"github.com/exec-review/cli/internal/ui"
)

func TestSelectPersonasExplicitList(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "cfo,ciso", false, "")
	if !reflect.DeepEqual(got, []persona.Type{persona.CFO, persona.CISO}) {
		t.Errorf("selectPersonas = %v, want [cfo ciso]", got)
	}
}

// A list of only unknown tokens warns per token and falls back to the
// default selection instead of leaving the run without personas.
func TestSelectPersonasAllUnknownFallsBack(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "bogus,alsobogus", false, "")

	if !reflect.DeepEqual(got, persona.DefaultSelection()) {
		t.Errorf("selectPersonas = %v, want default selection", got)
	}

	output := out.String()
	for _, want := range []string{
		"Unknown persona: bogus",
		"Unknown persona: alsobogus",
		"using default personas",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSelectPersonasUnknownUserTypeFallsBack(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "", false, "astronaut")

	if !reflect.DeepEqual(got, persona.DefaultSelection()) {
		t.Errorf("selectPersonas = %v, want default selection", got)
	}
	if !strings.Contains(out.String(), "Unknown user type: astronaut") {
		t.Errorf("output missing user type warning:\n%s", out.String())
	}
}

func TestSelectPersonasAll(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "", true, "")
	if !reflect.DeepEqual(got, persona.All()) {
		t.Errorf("selectPersonas = %v, want all personas", got)
	}
}

func TestSelectPersonasUserType(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "", false, "sales")
	if !reflect.DeepEqual(got, persona.UserTypeDefaults(persona.SalesEngineer)) {
		t.Errorf("selectPersonas = %v, want sales engineer defaults", got)
	}
}

func TestSelectPersonasDefault(t *testing.T) {
	var out bytes.Buffer
	got := selectPersonas(ui.NewPrinter(&out), "", false, "")
	if !reflect.DeepEqual(got, persona.DefaultSelection()) {
		t.Errorf("selectPersonas = %v, want default selection", got)
	}
}
