package keymap

import "testing"

func TestFromBindingsLookup(t *testing.T) {
	k := FromBindings(Default())
	if k.Lookup("j") != ActionGoDown {
		t.Fatalf("expected ActionGoDown for \"j\", got %v", k.Lookup("j"))
	}
	if k.Lookup("q") != ActionQuit {
		t.Fatalf("expected ActionQuit for \"q\", got %v", k.Lookup("q"))
	}
	if k.Lookup("unbound-key") != ActionNone {
		t.Fatal("expected ActionNone for an unbound key")
	}
}

func TestFromBindingsLaterWins(t *testing.T) {
	b := Bindings{
		GoUp:   []string{"x"},
		GoDown: []string{"x"},
	}
	k := FromBindings(b)
	if k.Lookup("x") != ActionGoDown {
		t.Fatalf("expected later binding to win, got %v", k.Lookup("x"))
	}
}
