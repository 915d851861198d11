/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

var variantFields = map[string]struct{}{
	"name":                   {},
	"id":                     {},
	"suits":                  {},
	"clueColors":             {},
	"clueRanks":              {},
	"colorCluesTouchNothing": {},
	"rankCluesTouchNothing":  {},
	"specialRank":            {},
	"specialAllClueColors":   {},
	"specialAllClueRanks":    {},
	"specialNoClueColors":    {},
	"specialNoClueRanks":     {},
	"specialDeceptive":       {},
	"oddsAndEvens":           {},
	"funnels":                {},
	"chimneys":               {},
	"showSuitNames":          {},
}

type recordDecoder struct {
	name   string
	fields map[string]json.RawMessage
	errs   ValidationList
}

func (d *recordDecoder) fail(code ErrorCode, field, format string, args ...any) {
	d.errs = append(d.errs, newValidation(code, d.name, field, format, args...))
}

// lookup returns the raw value for key, or nil when the key is absent.
// A present null is reported and treated as absent.
func (d *recordDecoder) lookup(key, want string) json.RawMessage {
	raw, ok := d.fields[key]
	if !ok {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		d.fail(ErrWrongType, key, "the %q property for the variant %q must be %s, not null", key, d.name, want)
		return nil
	}
	return raw
}

func optional[T any](d *recordDecoder, key, want string) *T {
	raw := d.lookup(key, want)
	if raw == nil {
		return nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		d.fail(ErrWrongType, key, "the %q property for the variant %q must be %s", key, d.name, want)
		return nil
	}
	return &value
}

func (d *recordDecoder) flag(key string) *bool {
	value := optional[bool](d, key, "a boolean")
	if value != nil && !*value {
		d.fail(ErrFlagNotTrue, key, "the %q property for the variant %q must be set to true", key, d.name)
		return nil
	}
	return value
}

// DecodeVariantJSON type-checks one record of variants.json. index is the
// record's position in the file and only names records that lack a usable
// name. On failure every field-level problem of the record is returned.
func DecodeVariantJSON(index int, raw json.RawMessage) (VariantJSON, ValidationList) {
	d := &recordDecoder{name: fmt.Sprintf("#%d", index)}

	if err := json.Unmarshal(raw, &d.fields); err != nil || d.fields == nil {
		d.fail(ErrMalformed, "", "variant %s is not a JSON object", d.name)
		return VariantJSON{}, d.errs
	}

	var out VariantJSON

	if name := optional[string](d, "name", "a string"); name == nil {
		if _, present := d.fields["name"]; !present {
			d.fail(ErrMissingField, "name", "there is a variant without a name in the variants file")
		}
	} else if *name == "" {
		d.fail(ErrMissingField, "name", "there is a variant with an empty name in the variants file")
	} else {
		out.Name = *name
		d.name = *name
	}

	if id := optional[int](d, "id", "an integer"); id == nil {
		if _, present := d.fields["id"]; !present {
			d.fail(ErrMissingField, "id", "the %q variant does not have an id", d.name)
		}
	} else if *id < 0 {
		d.fail(ErrOutOfRange, "id", "the %q variant has an invalid id: %d", d.name, *id)
	} else {
		out.ID = *id
	}

	if suits := optional[[]string](d, "suits", "an array of strings"); suits == nil {
		if _, present := d.fields["suits"]; !present {
			d.fail(ErrMissingField, "suits", "the %q variant does not have suits", d.name)
		}
	} else if len(*suits) == 0 {
		d.fail(ErrMissingField, "suits", "the suits for the variant %q is empty", d.name)
	} else {
		out.Suits = *suits
	}

	out.ClueColors = optional[[]string](d, "clueColors", "an array of strings")

	if ranks := optional[[]float64](d, "clueRanks", "an array of numbers"); ranks != nil {
		clueRanks := make([]int, 0, len(*ranks))
		for _, r := range *ranks {
			if r != math.Trunc(r) {
				d.fail(ErrOutOfRange, "clueRanks", "the %q property for the variant %q must only contain whole numbers", "clueRanks", d.name)
				clueRanks = nil
				break
			}
			clueRanks = append(clueRanks, int(r))
		}
		if clueRanks != nil {
			out.ClueRanks = &clueRanks
		}
	}

	if rank := optional[float64](d, "specialRank", "a number"); rank != nil {
		if *rank < 1 || *rank > 5 || *rank != math.Trunc(*rank) {
			d.fail(ErrOutOfRange, "specialRank", "the %q property for the variant %q must be between 1 and 5", "specialRank", d.name)
		} else {
			specialRank := int(*rank)
			out.SpecialRank = &specialRank
		}
	}

	out.ColorCluesTouchNothing = d.flag("colorCluesTouchNothing")
	out.RankCluesTouchNothing = d.flag("rankCluesTouchNothing")
	out.SpecialAllClueColors = d.flag("specialAllClueColors")
	out.SpecialAllClueRanks = d.flag("specialAllClueRanks")
	out.SpecialNoClueColors = d.flag("specialNoClueColors")
	out.SpecialNoClueRanks = d.flag("specialNoClueRanks")
	out.SpecialDeceptive = d.flag("specialDeceptive")
	out.OddsAndEvens = d.flag("oddsAndEvens")
	out.Funnels = d.flag("funnels")
	out.Chimneys = d.flag("chimneys")
	out.ShowSuitNames = d.flag("showSuitNames")

	unknown := make([]string, 0)
	for key := range d.fields {
		if _, ok := variantFields[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		d.fail(ErrUnknownField, key, "the variant %q has an unknown property %q", d.name, key)
	}

	if len(d.errs) > 0 {
		return VariantJSON{}, d.errs
	}
	return out, nil
}

// SplitRecords splits a variants.json document into its raw records.
func SplitRecords(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ValidationList{newValidation(ErrMalformed, "variants.json", "", "the variants file is not a JSON array: %v", err)}
	}
	return records, nil
}
