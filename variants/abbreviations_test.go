package variants

import (
	"reflect"
	"testing"
)

func TestResolveAbbreviations(t *testing.T) {
	_, suits := testTables(t)

	tests := []struct {
		name  string
		suits []string
		want  []string
	}{
		{name: "natural letters", suits: []string{"Red", "Yellow", "Green", "Blue", "Purple"}, want: []string{"R", "Y", "G", "B", "P"}},
		{name: "registered letter is not the initial", suits: []string{"Black", "Blue"}, want: []string{"K", "B"}},
		{name: "earlier suit keeps its letter", suits: []string{"Rainbow", "Red"}, want: []string{"R", "E"}},
		{name: "dark prefix letters are skipped", suits: []string{"Multi", "Dark Rainbow"}, want: []string{"M", "I"}},
		{name: "reserved note letters are skipped", suits: []string{"Red", "Fire"}, want: []string{"R", "I"}},
		{name: "non-letters are skipped", suits: []string{"Red", "Jet"}, want: []string{"R", "J"}},
		{name: "three-way collision", suits: []string{"Red", "Rainbow", "Fire"}, want: []string{"R", "I", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := make([]*Suit, 0, len(tt.suits))
			for _, name := range tt.suits {
				resolved = append(resolved, suits[name])
			}

			got, err := ResolveAbbreviations("test", resolved)
			if err != nil {
				t.Fatalf("ResolveAbbreviations() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ResolveAbbreviations() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveAbbreviationsDependsOnOrder(t *testing.T) {
	_, suits := testTables(t)

	forward, err := ResolveAbbreviations("v", []*Suit{suits["Red"], suits["Rainbow"]})
	if err != nil {
		t.Fatalf("ResolveAbbreviations() error = %v", err)
	}
	backward, err := ResolveAbbreviations("v", []*Suit{suits["Rainbow"], suits["Red"]})
	if err != nil {
		t.Fatalf("ResolveAbbreviations() error = %v", err)
	}

	if forward[0] != "R" || backward[0] != "R" {
		t.Fatalf("first suit should keep R: forward=%v backward=%v", forward, backward)
	}
	if forward[1] == backward[1] {
		t.Fatalf("expected different fallback letters, both %q", forward[1])
	}
}

func TestResolveAbbreviationsExhausted(t *testing.T) {
	_, suits := testTables(t)

	_, err := ResolveAbbreviations("Dark Times", []*Suit{suits["Red"], suits["Dark"]})
	wantValidation(t, err, ErrNoAbbreviation, `"Dark"`, `"Dark Times"`)

	list, _ := AsValidations(err)
	if list[0].Value != "Dark" {
		t.Fatalf("Value = %q, want Dark", list[0].Value)
	}
}

func TestReservedNotes(t *testing.T) {
	for _, letter := range []string{"f", "x"} {
		if _, ok := ReservedNotes[letter]; !ok {
			t.Fatalf("%q should be a reserved note", letter)
		}
	}
	if _, ok := ReservedNotes["chop move"]; !ok {
		t.Fatalf("multi-word notes should be reserved too")
	}
	if _, ok := ReservedNotes["r"]; ok {
		t.Fatalf("%q should not be reserved", "r")
	}
}
