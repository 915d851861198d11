/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import "encoding/json"

// Color is a clue color registered in the color table.
type Color struct {
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	Fill           string `json:"fill,omitempty"`
	FillColorblind string `json:"fillColorblind,omitempty"`
}

// Suit is a card suit registered in the suit table. Suits are shared
// between every variant that references them and must not be modified.
type Suit struct {
	Name          string
	DisplayName   string
	Abbreviation  string
	ClueColors    []*Color
	AllClueColors bool
	NoClueColors  bool
	Reversed      bool
	Fill          string
	Pip           string
}

// ColorTable maps color names to colors.
type ColorTable map[string]*Color

// SuitTable maps suit names to suits.
type SuitTable map[string]*Suit

// ClueColorNames returns the names of the colors that touch the suit.
func (s *Suit) ClueColorNames() []string {
	return colorNames(s.ClueColors)
}

// MarshalJSON renders clue colors by name.
func (s *Suit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name          string   `json:"name"`
		DisplayName   string   `json:"displayName"`
		Abbreviation  string   `json:"abbreviation"`
		ClueColors    []string `json:"clueColors"`
		AllClueColors bool     `json:"allClueColors,omitempty"`
		NoClueColors  bool     `json:"noClueColors,omitempty"`
		Reversed      bool     `json:"reversed,omitempty"`
		Fill          string   `json:"fill,omitempty"`
		Pip           string   `json:"pip,omitempty"`
	}{
		Name:          s.Name,
		DisplayName:   s.DisplayName,
		Abbreviation:  s.Abbreviation,
		ClueColors:    s.ClueColorNames(),
		AllClueColors: s.AllClueColors,
		NoClueColors:  s.NoClueColors,
		Reversed:      s.Reversed,
		Fill:          s.Fill,
		Pip:           s.Pip,
	})
}

// VariantJSON is a raw record of variants.json after type checking. Optional
// fields are nil when the key was absent. The jsonschema tags feed the
// schema subcommand.
type VariantJSON struct {
	Name                   string    `json:"name" jsonschema:"title=Name,description=Unique display name of the variant,minLength=1,required"`
	ID                     int       `json:"id" jsonschema:"title=ID,description=Stable numeric identifier; the first variant is 0,minimum=0,required"`
	Suits                  []string  `json:"suits" jsonschema:"title=Suits,description=Ordered suit names from suits.json,minItems=1,required"`
	ClueColors             *[]string `json:"clueColors,omitempty" jsonschema:"description=Colors available to clue; derived from the suits when absent"`
	ClueRanks              *[]int    `json:"clueRanks,omitempty" jsonschema:"description=Ranks available to clue; 1 through 5 when absent"`
	ColorCluesTouchNothing *bool     `json:"colorCluesTouchNothing,omitempty" jsonschema:"enum=true"`
	RankCluesTouchNothing  *bool     `json:"rankCluesTouchNothing,omitempty" jsonschema:"enum=true"`
	SpecialRank            *int      `json:"specialRank,omitempty" jsonschema:"minimum=1,maximum=5"`
	SpecialAllClueColors   *bool     `json:"specialAllClueColors,omitempty" jsonschema:"enum=true"`
	SpecialAllClueRanks    *bool     `json:"specialAllClueRanks,omitempty" jsonschema:"enum=true"`
	SpecialNoClueColors    *bool     `json:"specialNoClueColors,omitempty" jsonschema:"enum=true"`
	SpecialNoClueRanks     *bool     `json:"specialNoClueRanks,omitempty" jsonschema:"enum=true"`
	SpecialDeceptive       *bool     `json:"specialDeceptive,omitempty" jsonschema:"enum=true"`
	OddsAndEvens           *bool     `json:"oddsAndEvens,omitempty" jsonschema:"enum=true"`
	Funnels                *bool     `json:"funnels,omitempty" jsonschema:"enum=true"`
	Chimneys               *bool     `json:"chimneys,omitempty" jsonschema:"enum=true"`
	ShowSuitNames          *bool     `json:"showSuitNames,omitempty" jsonschema:"enum=true"`
}

// VariantFile is the whole of variants.json.
type VariantFile []VariantJSON

// Variant is a compiled variant. Every slice is owned by the variant and
// must be treated as read-only.
type Variant struct {
	Name  string
	ID    int
	Suits []*Suit
	Ranks []int

	ClueColors []*Color
	ClueRanks  []int

	ColorCluesTouchNothing bool
	RankCluesTouchNothing  bool
	SpecialRank            int
	SpecialAllClueColors   bool
	SpecialAllClueRanks    bool
	SpecialNoClueColors    bool
	SpecialNoClueRanks     bool
	SpecialDeceptive       bool
	OddsAndEvens           bool
	Funnels                bool
	Chimneys               bool
	ShowSuitNames          bool

	MaxScore             int
	OffsetCornerElements bool
	SuitAbbreviations    []string
	IdentityNotePattern  NotePattern
}

// SuitNames returns the variant's suit names in declared order.
func (v *Variant) SuitNames() []string {
	names := make([]string, 0, len(v.Suits))
	for _, s := range v.Suits {
		names = append(names, s.Name)
	}
	return names
}

// ClueColorNames returns the names of the variant's clue colors.
func (v *Variant) ClueColorNames() []string {
	return colorNames(v.ClueColors)
}

// IsUpOrDown reports whether the variant uses START cards.
func (v *Variant) IsUpOrDown() bool {
	return isUpOrDown(v.Name)
}

// MarshalJSON renders suits and colors by name.
func (v *Variant) MarshalJSON() ([]byte, error) {
	pattern := ""
	if v.IdentityNotePattern != nil {
		pattern = v.IdentityNotePattern.String()
	}

	return json.Marshal(struct {
		Name                   string   `json:"name"`
		ID                     int      `json:"id"`
		Suits                  []string `json:"suits"`
		Ranks                  []int    `json:"ranks"`
		ClueColors             []string `json:"clueColors"`
		ClueRanks              []int    `json:"clueRanks"`
		ColorCluesTouchNothing bool     `json:"colorCluesTouchNothing"`
		RankCluesTouchNothing  bool     `json:"rankCluesTouchNothing"`
		SpecialRank            int      `json:"specialRank"`
		SpecialAllClueColors   bool     `json:"specialAllClueColors"`
		SpecialAllClueRanks    bool     `json:"specialAllClueRanks"`
		SpecialNoClueColors    bool     `json:"specialNoClueColors"`
		SpecialNoClueRanks     bool     `json:"specialNoClueRanks"`
		SpecialDeceptive       bool     `json:"specialDeceptive"`
		OddsAndEvens           bool     `json:"oddsAndEvens"`
		Funnels                bool     `json:"funnels"`
		Chimneys               bool     `json:"chimneys"`
		ShowSuitNames          bool     `json:"showSuitNames"`
		MaxScore               int      `json:"maxScore"`
		OffsetCornerElements   bool     `json:"offsetCornerElements"`
		SuitAbbreviations      []string `json:"suitAbbreviations"`
		IdentityNotePattern    string   `json:"identityNotePattern"`
	}{
		Name:                   v.Name,
		ID:                     v.ID,
		Suits:                  v.SuitNames(),
		Ranks:                  v.Ranks,
		ClueColors:             v.ClueColorNames(),
		ClueRanks:              v.ClueRanks,
		ColorCluesTouchNothing: v.ColorCluesTouchNothing,
		RankCluesTouchNothing:  v.RankCluesTouchNothing,
		SpecialRank:            v.SpecialRank,
		SpecialAllClueColors:   v.SpecialAllClueColors,
		SpecialAllClueRanks:    v.SpecialAllClueRanks,
		SpecialNoClueColors:    v.SpecialNoClueColors,
		SpecialNoClueRanks:     v.SpecialNoClueRanks,
		SpecialDeceptive:       v.SpecialDeceptive,
		OddsAndEvens:           v.OddsAndEvens,
		Funnels:                v.Funnels,
		Chimneys:               v.Chimneys,
		ShowSuitNames:          v.ShowSuitNames,
		MaxScore:               v.MaxScore,
		OffsetCornerElements:   v.OffsetCornerElements,
		SuitAbbreviations:      v.SuitAbbreviations,
		IdentityNotePattern:    pattern,
	})
}

func colorNames(colors []*Color) []string {
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, c.Name)
	}
	return names
}
