/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"encoding/json"
	"fmt"
)

// Compiler turns the records of variants.json into a Catalog. The tables
// are only read.
type Compiler struct {
	Colors    ColorTable
	Suits     SuitTable
	StartRank int
	Notes     NotePatternBuilder
}

// Compile builds a catalog with the default note pattern builder.
func Compile(colors ColorTable, suits SuitTable, startRank int, data []byte) (*Catalog, error) {
	c := &Compiler{
		Colors:    colors,
		Suits:     suits,
		StartRank: startRank,
		Notes:     RegexpNoteBuilder{StartRank: startRank},
	}
	return c.Compile(data)
}

// Compile parses and compiles a variants.json document.
func (c *Compiler) Compile(data []byte) (*Catalog, error) {
	records, err := SplitRecords(data)
	if err != nil {
		return nil, err
	}
	return c.CompileRecords(records)
}

// CompileRecords compiles every record. It either returns a complete
// catalog or a ValidationList holding every problem found; there is no
// partial result.
func (c *Compiler) CompileRecords(records []json.RawMessage) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ValidationList{newValidation(ErrEmptyCatalog, "variants.json", "", "the variants file did not have any elements in it")}
	}

	var errs ValidationList
	catalog := newCatalog(len(records))
	ids := make(map[int]string, len(records))

	for i, raw := range records {
		record, recordErrs := DecodeVariantJSON(i, raw)
		if len(recordErrs) > 0 {
			errs = append(errs, recordErrs...)
			continue
		}

		if _, dup := catalog.Get(record.Name); dup {
			errs = append(errs, newValidation(ErrDuplicate, record.Name, "name", "the variant name %q is used more than once", record.Name))
			continue
		}
		if other, dup := ids[record.ID]; dup {
			errs = append(errs, newValidation(ErrDuplicate, record.Name, "id", "the variant %q has the same id (%d) as the variant %q", record.Name, record.ID, other))
			continue
		}

		variant, variantErrs := c.compileVariant(record)
		if len(variantErrs) > 0 {
			errs = append(errs, variantErrs...)
			continue
		}

		ids[variant.ID] = variant.Name
		catalog.add(variant)
	}

	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (c *Compiler) compileVariant(record VariantJSON) (*Variant, ValidationList) {
	name := record.Name
	var errs ValidationList

	suits, suitErrs := c.resolveSuits(name, record.Suits)
	errs = append(errs, suitErrs...)

	clueColors, colorErrs := c.resolveClueColors(name, record.ClueColors, suits)
	errs = append(errs, colorErrs...)

	if len(errs) > 0 {
		return nil, errs
	}

	ranks := c.ranksFor(name)
	upOrDown := isUpOrDown(name)

	clueRanks := append([]int(nil), DefaultClueRanks...)
	if record.ClueRanks != nil {
		clueRanks = append([]int(nil), (*record.ClueRanks)...)
	}

	specialRank := -1
	if record.SpecialRank != nil {
		specialRank = *record.SpecialRank
	}

	showSuitNames := isSet(record.ShowSuitNames) || anySuit(suits, func(s *Suit) bool { return s.Reversed })

	abbreviations, err := ResolveAbbreviations(name, suits)
	if err != nil {
		list, _ := AsValidations(err)
		return nil, list
	}

	notes := c.Notes
	if notes == nil {
		notes = RegexpNoteBuilder{StartRank: c.StartRank}
	}
	pattern, err := notes.Build(suits, ranks, abbreviations, upOrDown)
	if err != nil {
		return nil, ValidationList{newValidation(ErrNotePattern, name, "", "failed to build the identity note pattern for the variant %q: %v", name, err)}
	}

	return &Variant{
		Name:                   name,
		ID:                     record.ID,
		Suits:                  suits,
		Ranks:                  ranks,
		ClueColors:             clueColors,
		ClueRanks:              clueRanks,
		ColorCluesTouchNothing: isSet(record.ColorCluesTouchNothing),
		RankCluesTouchNothing:  isSet(record.RankCluesTouchNothing),
		SpecialRank:            specialRank,
		SpecialAllClueColors:   isSet(record.SpecialAllClueColors),
		SpecialAllClueRanks:    isSet(record.SpecialAllClueRanks),
		SpecialNoClueColors:    isSet(record.SpecialNoClueColors),
		SpecialNoClueRanks:     isSet(record.SpecialNoClueRanks),
		SpecialDeceptive:       isSet(record.SpecialDeceptive),
		OddsAndEvens:           isSet(record.OddsAndEvens),
		Funnels:                isSet(record.Funnels),
		Chimneys:               isSet(record.Chimneys),
		ShowSuitNames:          showSuitNames,
		MaxScore:               len(suits) * PointsPerStack,
		OffsetCornerElements:   anySuit(suits, func(s *Suit) bool { return len(s.ClueColors) > 1 }),
		SuitAbbreviations:      abbreviations,
		IdentityNotePattern:    pattern,
	}, nil
}

func (c *Compiler) resolveSuits(variantName string, names []string) ([]*Suit, ValidationList) {
	var errs ValidationList
	suits := make([]*Suit, 0, len(names))

	for _, suitName := range names {
		suit, ok := c.Suits[suitName]
		if !ok {
			v := newValidation(ErrUnknownSuit, variantName, "suits", "the suit %q in the variant %q does not exist", suitName, variantName)
			v.Value = suitName
			errs = append(errs, v)
			continue
		}
		suits = append(suits, suit)
	}

	return suits, errs
}

// resolveClueColors resolves an explicit clue color list, or derives one
// from the suits. Suits touched by every color are skipped when deriving so
// that they do not put every color in the clue menu.
func (c *Compiler) resolveClueColors(variantName string, names *[]string, suits []*Suit) ([]*Color, ValidationList) {
	if names == nil {
		return foldUnique(suits, func(s *Suit) []*Color {
			if s.AllClueColors {
				return nil
			}
			return s.ClueColors
		}), nil
	}

	var errs ValidationList
	seen := make(map[string]struct{}, len(*names))
	colors := make([]*Color, 0, len(*names))

	for _, colorName := range *names {
		color, ok := c.Colors[colorName]
		if !ok {
			v := newValidation(ErrUnknownColor, variantName, "clueColors", "the color %q in the variant %q does not exist", colorName, variantName)
			v.Value = colorName
			errs = append(errs, v)
			continue
		}
		if _, dup := seen[colorName]; dup {
			v := newValidation(ErrDuplicate, variantName, "clueColors", "the color %q is listed more than once in the clue colors of the variant %q", colorName, variantName)
			v.Value = colorName
			errs = append(errs, v)
			continue
		}
		seen[colorName] = struct{}{}
		colors = append(colors, color)
	}

	return colors, errs
}

func (c *Compiler) ranksFor(name string) []int {
	ranks := append([]int(nil), DefaultCardRanks...)
	if isUpOrDown(name) {
		startRank := c.StartRank
		if startRank == 0 {
			startRank = StartCardRank
		}
		ranks = append(ranks, startRank)
	}
	return ranks
}

// foldUnique concatenates the colors each suit contributes, keeping the
// first occurrence of every color.
func foldUnique(suits []*Suit, contribute func(*Suit) []*Color) []*Color {
	seen := make(map[*Color]struct{})
	out := make([]*Color, 0)
	for _, s := range suits {
		for _, color := range contribute(s) {
			if _, dup := seen[color]; dup {
				continue
			}
			seen[color] = struct{}{}
			out = append(out, color)
		}
	}
	return out
}

func anySuit(suits []*Suit, pred func(*Suit) bool) bool {
	for _, s := range suits {
		if pred(s) {
			return true
		}
	}
	return false
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}

// String summarises a variant on one line.
func (v *Variant) String() string {
	return fmt.Sprintf("%d %q suits=%v abbreviations=%v clueColors=%v maxScore=%d",
		v.ID, v.Name, v.SuitNames(), v.SuitAbbreviations, v.ClueColorNames(), v.MaxScore)
}
