/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

type colorJSON struct {
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation,omitempty"`
	Fill           string `json:"fill,omitempty"`
	FillColorblind string `json:"fillColorblind,omitempty"`
}

type suitJSON struct {
	Name          string    `json:"name"`
	DisplayName   string    `json:"displayName,omitempty"`
	Abbreviation  string    `json:"abbreviation,omitempty"`
	ClueColors    *[]string `json:"clueColors,omitempty"`
	AllClueColors bool      `json:"allClueColors,omitempty"`
	NoClueColors  bool      `json:"noClueColors,omitempty"`
	Reversed      bool      `json:"reversed,omitempty"`
	Fill          string    `json:"fill,omitempty"`
	Pip           string    `json:"pip,omitempty"`
}

func decodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// LoadColors parses colors.json. Colors are returned in file order.
func LoadColors(data []byte) ([]*Color, error) {
	var raw []colorJSON
	if err := decodeStrict(data, &raw); err != nil {
		return nil, ValidationList{newValidation(ErrMalformed, "colors.json", "", "%v", err)}
	}
	if len(raw) == 0 {
		return nil, ValidationList{newValidation(ErrEmptyCatalog, "colors.json", "", "the colors file did not have any elements in it")}
	}

	var errs ValidationList
	seen := make(map[string]struct{}, len(raw))
	colors := make([]*Color, 0, len(raw))

	for i, c := range raw {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs = append(errs, newValidation(ErrMissingField, "", "name", "color #%d has an empty name", i))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, newValidation(ErrDuplicate, name, "name", "the color %q is defined more than once", name))
			continue
		}
		seen[name] = struct{}{}

		abbreviation := c.Abbreviation
		if abbreviation == "" {
			abbreviation = firstLetter(name)
		}
		if utf8.RuneCountInString(abbreviation) != 1 {
			errs = append(errs, newValidation(ErrOutOfRange, name, "abbreviation", "the abbreviation for the color %q must be a single letter", name))
			continue
		}

		colors = append(colors, &Color{
			Name:           name,
			Abbreviation:   strings.ToUpper(abbreviation),
			Fill:           c.Fill,
			FillColorblind: c.FillColorblind,
		})
	}

	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return colors, nil
}

// IndexColors builds a lookup table from a color list.
func IndexColors(colors []*Color) ColorTable {
	table := make(ColorTable, len(colors))
	for _, c := range colors {
		table[c.Name] = c
	}
	return table
}

// LoadSuits parses suits.json, resolving clue colors through colors. Suits
// are returned in file order.
func LoadSuits(data []byte, colors ColorTable) ([]*Suit, error) {
	var raw []suitJSON
	if err := decodeStrict(data, &raw); err != nil {
		return nil, ValidationList{newValidation(ErrMalformed, "suits.json", "", "%v", err)}
	}
	if len(raw) == 0 {
		return nil, ValidationList{newValidation(ErrEmptyCatalog, "suits.json", "", "the suits file did not have any elements in it")}
	}

	var errs ValidationList
	seen := make(map[string]struct{}, len(raw))
	suits := make([]*Suit, 0, len(raw))

	for i, s := range raw {
		suit, suitErrs := buildSuit(i, s, colors)
		if len(suitErrs) > 0 {
			errs = append(errs, suitErrs...)
			continue
		}
		if _, dup := seen[suit.Name]; dup {
			errs = append(errs, newValidation(ErrDuplicate, suit.Name, "name", "the suit %q is defined more than once", suit.Name))
			continue
		}
		seen[suit.Name] = struct{}{}
		suits = append(suits, suit)
	}

	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return suits, nil
}

func buildSuit(i int, s suitJSON, colors ColorTable) (*Suit, ValidationList) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, ValidationList{newValidation(ErrMissingField, "", "name", "suit #%d has an empty name", i)}
	}

	var errs ValidationList

	displayName := s.DisplayName
	if displayName == "" {
		displayName = name
	}

	abbreviation := s.Abbreviation
	if abbreviation == "" {
		abbreviation = firstLetter(name)
	}
	if r, size := utf8.DecodeRuneInString(abbreviation); size != len(abbreviation) || !isLetter(r) {
		errs = append(errs, newValidation(ErrOutOfRange, name, "abbreviation", "the abbreviation for the suit %q must be a single letter", name))
	}

	if s.AllClueColors && s.NoClueColors {
		errs = append(errs, newValidation(ErrOutOfRange, name, "allClueColors", "the suit %q cannot be touched by all colors and by no colors", name))
	}

	var clueColors []*Color
	switch {
	case s.ClueColors != nil:
		for _, colorName := range *s.ClueColors {
			color, ok := colors[colorName]
			if !ok {
				v := newValidation(ErrUnknownColor, name, "clueColors", "the color %q in the suit %q does not exist", colorName, name)
				v.Value = colorName
				errs = append(errs, v)
				continue
			}
			clueColors = append(clueColors, color)
		}
	case !s.AllClueColors && !s.NoClueColors:
		// A suit without explicit clue colors is touched by its namesake color, if one exists.
		if color, ok := colors[name]; ok {
			clueColors = []*Color{color}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Suit{
		Name:          name,
		DisplayName:   displayName,
		Abbreviation:  strings.ToUpper(abbreviation),
		ClueColors:    clueColors,
		AllClueColors: s.AllClueColors,
		NoClueColors:  s.NoClueColors,
		Reversed:      s.Reversed,
		Fill:          s.Fill,
		Pip:           s.Pip,
	}, nil
}

// IndexSuits builds a lookup table from a suit list.
func IndexSuits(suits []*Suit) SuitTable {
	table := make(SuitTable, len(suits))
	for _, s := range suits {
		table[s.Name] = s
	}
	return table
}

func firstLetter(s string) string {
	for _, r := range s {
		if isLetter(r) {
			return string(r)
		}
	}
	return ""
}
