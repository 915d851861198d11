/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import "strings"

// StartCardRank is the rank of the START cards in "Up or Down" variants.
const StartCardRank = 7

// PointsPerStack is the score contributed by a completed suit.
const PointsPerStack = 5

const upOrDownPrefix = "Up or Down"

// DefaultCardRanks are the ranks every suit is dealt with.
var DefaultCardRanks = []int{1, 2, 3, 4, 5}

// DefaultClueRanks are the ranks players may clue unless a variant says otherwise.
var DefaultClueRanks = []int{1, 2, 3, 4, 5}

// Note vocabulary that players type as shorthand. A suit abbreviation must
// never be one of these, or a one-letter note becomes ambiguous.
var (
	KnownTrashNotes = []string{"kt", "trash", "stale", "bad"}
	ChopMovedNotes  = []string{
		"cm", "chop move", "chop moved",
		"5cm", "e5cm", "tcm", "tccm", "sdcm", "esdcm", "sbpcm", "ocm", "tocm",
		"utfcm", "utbcm", "mcm",
	}
	FinessedNotes        = []string{"f", "hf", "pf", "gd"}
	NeedsFixNotes        = []string{"fix", "fixme", "needs fix"}
	QuestionMarkNotes    = []string{"?"}
	ExclamationMarkNotes = []string{"!"}
	BlankNotes           = []string{"blank", "unknown"}
	CluedNotes           = []string{"clued", "cl"}
	UncluedNotes         = []string{"unclued", "x"}
)

// ReservedNotes is the union of every reserved note word, lower-cased.
var ReservedNotes = buildReservedNotes()

// AbbreviationBlacklist holds the letters of the "Dark" prefix, so that a
// dark suit does not claim a letter from its qualifier.
var AbbreviationBlacklist = map[string]struct{}{
	"d": {},
	"a": {},
	"r": {},
	"k": {},
}

func buildReservedNotes() map[string]struct{} {
	groups := [][]string{
		KnownTrashNotes,
		ChopMovedNotes,
		FinessedNotes,
		NeedsFixNotes,
		QuestionMarkNotes,
		ExclamationMarkNotes,
		BlankNotes,
		CluedNotes,
		UncluedNotes,
	}

	set := make(map[string]struct{})
	for _, group := range groups {
		for _, note := range group {
			set[strings.ToLower(note)] = struct{}{}
		}
	}
	return set
}

func isUpOrDown(name string) bool {
	return strings.HasPrefix(name, upOrDownPrefix)
}
