/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Identity is a card identity written in a note. Unknown parts are -1.
type Identity struct {
	SuitIndex int `json:"suitIndex"`
	Rank      int `json:"rank"`
}

// NotePattern recognises card identities in free-text notes.
type NotePattern interface {
	Match(note string) (Identity, bool)
	String() string
}

// NotePatternBuilder builds the identity note pattern of a variant.
type NotePatternBuilder interface {
	Build(suits []*Suit, ranks []int, abbreviations []string, upOrDown bool) (NotePattern, error)
}

// RegexpNoteBuilder is the default NotePatternBuilder. It accepts a suit,
// a rank, or both in either order, optionally separated by a space.
type RegexpNoteBuilder struct {
	// StartRank is the rank written as "s" or "start" in Up or Down
	// variants. Zero means StartCardRank.
	StartRank int
}

type regexpPattern struct {
	re    *regexp.Regexp
	suits map[string]int
	ranks map[string]int
}

// Build implements NotePatternBuilder.
func (b RegexpNoteBuilder) Build(suits []*Suit, ranks []int, abbreviations []string, upOrDown bool) (NotePattern, error) {
	if len(abbreviations) != len(suits) {
		return nil, fmt.Errorf("got %d abbreviations for %d suits", len(abbreviations), len(suits))
	}

	startRank := b.StartRank
	if startRank == 0 {
		startRank = StartCardRank
	}

	p := &regexpPattern{
		suits: make(map[string]int, len(suits)*2),
		ranks: make(map[string]int, len(ranks)+2),
	}

	for i, suit := range suits {
		for _, token := range []string{abbreviations[i], suit.DisplayName} {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			if _, exists := p.suits[token]; !exists {
				p.suits[token] = i
			}
		}
	}

	for _, rank := range ranks {
		if upOrDown && rank == startRank {
			p.ranks["start"] = rank
			if _, clash := p.suits["s"]; !clash {
				p.ranks["s"] = rank
			}
			continue
		}
		p.ranks[strconv.Itoa(rank)] = rank
	}

	if len(p.suits) == 0 || len(p.ranks) == 0 {
		return nil, fmt.Errorf("cannot build a note pattern without suits and ranks")
	}

	suit := alternation(p.suits)
	rank := alternation(p.ranks)

	source := fmt.Sprintf(`(?i)^(?:(?P<s1>%[1]s) ?(?P<r1>%[2]s)|(?P<r2>%[2]s) ?(?P<s2>%[1]s)|(?P<s3>%[1]s)|(?P<r3>%[2]s))$`, suit, rank)

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	p.re = re

	return p, nil
}

func alternation(tokens map[string]int) string {
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}

func (p *regexpPattern) String() string {
	return p.re.String()
}

// Match checks the last segment of a note; players separate successive
// notes on one card with "|" or ",".
func (p *regexpPattern) Match(note string) (Identity, bool) {
	if i := strings.LastIndexAny(note, "|,"); i >= 0 {
		note = note[i+1:]
	}
	note = strings.TrimSpace(note)

	m := p.re.FindStringSubmatch(note)
	if m == nil {
		return Identity{}, false
	}

	id := Identity{SuitIndex: -1, Rank: -1}
	for _, group := range []string{"s1", "s2", "s3"} {
		if token := m[p.re.SubexpIndex(group)]; token != "" {
			id.SuitIndex = p.suits[strings.ToLower(token)]
		}
	}
	for _, group := range []string{"r1", "r2", "r3"} {
		if token := m[p.re.SubexpIndex(group)]; token != "" {
			id.Rank = p.ranks[strings.ToLower(token)]
		}
	}

	return id, true
}
