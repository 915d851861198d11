package variants

import "testing"

func TestIdentityNotePattern(t *testing.T) {
	c := mustCompile(t, `[
		{"name": "No Variant", "id": 0, "suits": ["Red", "Yellow", "Green", "Blue", "Purple"]},
		{"name": "Up or Down (2 Suits)", "id": 1, "suits": ["Red", "Blue"]},
		{"name": "Reversed (2 Suits)", "id": 2, "suits": ["Red", "Teal Reversed"]}
	]`)

	tests := []struct {
		variant string
		note    string
		want    Identity
		ok      bool
	}{
		{variant: "No Variant", note: "r1", want: Identity{SuitIndex: 0, Rank: 1}, ok: true},
		{variant: "No Variant", note: "1r", want: Identity{SuitIndex: 0, Rank: 1}, ok: true},
		{variant: "No Variant", note: "B4", want: Identity{SuitIndex: 3, Rank: 4}, ok: true},
		{variant: "No Variant", note: "purple 5", want: Identity{SuitIndex: 4, Rank: 5}, ok: true},
		{variant: "No Variant", note: "3 green", want: Identity{SuitIndex: 2, Rank: 3}, ok: true},
		{variant: "No Variant", note: "  y ", want: Identity{SuitIndex: 1, Rank: -1}, ok: true},
		{variant: "No Variant", note: "2", want: Identity{SuitIndex: -1, Rank: 2}, ok: true},
		{variant: "No Variant", note: "kt | g2", want: Identity{SuitIndex: 2, Rank: 2}, ok: true},
		{variant: "No Variant", note: "cm", ok: false},
		{variant: "No Variant", note: "r6", ok: false},
		{variant: "No Variant", note: "t1", ok: false},
		{variant: "No Variant", note: "g2, kt", ok: false},
		{variant: "Up or Down (2 Suits)", note: "rs", want: Identity{SuitIndex: 0, Rank: StartCardRank}, ok: true},
		{variant: "Up or Down (2 Suits)", note: "start", want: Identity{SuitIndex: -1, Rank: StartCardRank}, ok: true},
		{variant: "Up or Down (2 Suits)", note: "b start", want: Identity{SuitIndex: 1, Rank: StartCardRank}, ok: true},
		{variant: "Up or Down (2 Suits)", note: "b7", ok: false},
		{variant: "Reversed (2 Suits)", note: "teal 2", want: Identity{SuitIndex: 1, Rank: 2}, ok: true},
		{variant: "Reversed (2 Suits)", note: "s", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.variant+"/"+tt.note, func(t *testing.T) {
			v := mustVariant(t, c, tt.variant)
			got, ok := v.IdentityNotePattern.Match(tt.note)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v (pattern %s)", tt.note, ok, tt.ok, v.IdentityNotePattern)
			}
			if ok && got != tt.want {
				t.Fatalf("Match(%q) = %+v, want %+v", tt.note, got, tt.want)
			}
		})
	}
}

func TestRegexpNoteBuilderStartClash(t *testing.T) {
	suits := []*Suit{{Name: "Sky", DisplayName: "Sky", Abbreviation: "S"}}

	p, err := RegexpNoteBuilder{}.Build(suits, []int{1, 2, 3, 4, 5, StartCardRank}, []string{"S"}, true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got, ok := p.Match("s")
	if !ok || got.SuitIndex != 0 || got.Rank != -1 {
		t.Fatalf(`Match("s") = %+v, %v; the suit should win over the START shorthand`, got, ok)
	}
	got, ok = p.Match("s start")
	if !ok || got.SuitIndex != 0 || got.Rank != StartCardRank {
		t.Fatalf(`Match("s start") = %+v, %v`, got, ok)
	}
}

func TestRegexpNoteBuilderRejectsMismatch(t *testing.T) {
	suits := []*Suit{{Name: "Red", DisplayName: "Red", Abbreviation: "R"}}
	if _, err := (RegexpNoteBuilder{}).Build(suits, []int{1}, nil, false); err == nil {
		t.Fatalf("expected an error for missing abbreviations")
	}
}
