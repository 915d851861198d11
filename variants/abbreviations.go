/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ResolveAbbreviations assigns every suit of a variant a distinct letter.
//
// Suit abbreviations are fixed in suits.json, but two suits of one variant
// can share a letter. Earlier suits keep their registered letter; a later
// suit that collides takes the left-most free letter of its display name,
// skipping reserved note letters and the letters of the "Dark" prefix.
// Reordering the suits of a variant can therefore change its abbreviations.
//
// The result is parallel to suits and upper-cased.
func ResolveAbbreviations(variantName string, suits []*Suit) ([]string, error) {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	used := make(map[string]struct{}, len(suits))
	abbreviations := make([]string, 0, len(suits))

	for _, suit := range suits {
		abbreviation, ok := abbreviationFor(lower, suit, used)
		if !ok {
			v := newValidation(ErrNoAbbreviation, variantName, "suits",
				"failed to find a suit abbreviation for %q in the variant %q; every letter of %q is taken or reserved",
				suit.Name, variantName, suit.DisplayName)
			v.Value = suit.Name
			return nil, ValidationList{v}
		}
		used[abbreviation] = struct{}{}
		abbreviations = append(abbreviations, abbreviation)
	}

	if len(used) != len(abbreviations) {
		return nil, ValidationList{newValidation(ErrDuplicate, variantName, "suits",
			"the variant %q has two suits with the same abbreviation: %s",
			variantName, strings.Join(abbreviations, ","))}
	}

	for i, a := range abbreviations {
		abbreviations[i] = upper.String(a)
	}
	return abbreviations, nil
}

func abbreviationFor(lower cases.Caser, suit *Suit, used map[string]struct{}) (string, bool) {
	natural := lower.String(suit.Abbreviation)
	if _, taken := used[natural]; !taken {
		return natural, true
	}

	for _, r := range suit.DisplayName {
		if !isLetter(r) {
			continue
		}
		letter := lower.String(string(r))
		if _, taken := used[letter]; taken {
			continue
		}
		if _, reserved := ReservedNotes[letter]; reserved {
			continue
		}
		if _, banned := AbbreviationBlacklist[letter]; banned {
			continue
		}
		return letter, true
	}

	return "", false
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
