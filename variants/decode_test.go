package variants

import (
	"encoding/json"
	"testing"
)

func TestDecodeVariantJSON(t *testing.T) {
	raw := json.RawMessage(`{
		"name": "Everything",
		"id": 12,
		"suits": ["Red", "Blue"],
		"clueColors": ["Red"],
		"clueRanks": [1, 5],
		"specialRank": 3,
		"specialAllClueColors": true,
		"funnels": true
	}`)

	got, errs := DecodeVariantJSON(0, raw)
	if len(errs) > 0 {
		t.Fatalf("DecodeVariantJSON() errors = %s", errs.Details())
	}

	if got.Name != "Everything" || got.ID != 12 || len(got.Suits) != 2 {
		t.Fatalf("required fields = %+v", got)
	}
	if got.ClueColors == nil || len(*got.ClueColors) != 1 {
		t.Fatalf("clueColors = %v", got.ClueColors)
	}
	if got.ClueRanks == nil || len(*got.ClueRanks) != 2 {
		t.Fatalf("clueRanks = %v", got.ClueRanks)
	}
	if got.SpecialRank == nil || *got.SpecialRank != 3 {
		t.Fatalf("specialRank = %v", got.SpecialRank)
	}
	if !isSet(got.SpecialAllClueColors) || !isSet(got.Funnels) {
		t.Fatalf("flags = %+v", got)
	}
	if got.Chimneys != nil || got.ShowSuitNames != nil {
		t.Fatalf("absent flags should stay nil: %+v", got)
	}
}

func TestDecodeVariantJSONWholeFloats(t *testing.T) {
	raw := json.RawMessage(`{"name": "v", "id": 0, "suits": ["Red"], "specialRank": 5.0, "clueRanks": [1.0, 3e0]}`)

	got, errs := DecodeVariantJSON(0, raw)
	if len(errs) > 0 {
		t.Fatalf("DecodeVariantJSON() errors = %s", errs.Details())
	}
	if got.SpecialRank == nil || *got.SpecialRank != 5 {
		t.Fatalf("specialRank = %v", got.SpecialRank)
	}
	if got.ClueRanks == nil || len(*got.ClueRanks) != 2 || (*got.ClueRanks)[0] != 1 || (*got.ClueRanks)[1] != 3 {
		t.Fatalf("clueRanks = %v", got.ClueRanks)
	}
}

func TestDecodeVariantJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		code  ErrorCode
		field string
	}{
		{name: "not an object", raw: `[1, 2]`, code: ErrMalformed},
		{name: "null record", raw: `null`, code: ErrMalformed},
		{name: "missing name", raw: `{"id": 0, "suits": ["Red"]}`, code: ErrMissingField, field: "name"},
		{name: "name not a string", raw: `{"name": 4, "id": 0, "suits": ["Red"]}`, code: ErrWrongType, field: "name"},
		{name: "missing id", raw: `{"name": "v", "suits": ["Red"]}`, code: ErrMissingField, field: "id"},
		{name: "fractional id", raw: `{"name": "v", "id": 1.5, "suits": ["Red"]}`, code: ErrWrongType, field: "id"},
		{name: "suits not an array", raw: `{"name": "v", "id": 0, "suits": "Red"}`, code: ErrWrongType, field: "suits"},
		{name: "suit not a string", raw: `{"name": "v", "id": 0, "suits": ["Red", 2]}`, code: ErrWrongType, field: "suits"},
		{name: "clue color not a string", raw: `{"name": "v", "id": 0, "suits": ["Red"], "clueColors": [true]}`, code: ErrWrongType, field: "clueColors"},
		{name: "clue rank not a number", raw: `{"name": "v", "id": 0, "suits": ["Red"], "clueRanks": ["1"]}`, code: ErrWrongType, field: "clueRanks"},
		{name: "special rank not a number", raw: `{"name": "v", "id": 0, "suits": ["Red"], "specialRank": "1"}`, code: ErrWrongType, field: "specialRank"},
		{name: "special rank below range", raw: `{"name": "v", "id": 0, "suits": ["Red"], "specialRank": 0}`, code: ErrOutOfRange, field: "specialRank"},
		{name: "fractional special rank", raw: `{"name": "v", "id": 0, "suits": ["Red"], "specialRank": 2.5}`, code: ErrOutOfRange, field: "specialRank"},
		{name: "fractional clue rank", raw: `{"name": "v", "id": 0, "suits": ["Red"], "clueRanks": [1, 1.5]}`, code: ErrOutOfRange, field: "clueRanks"},
		{name: "flag is false", raw: `{"name": "v", "id": 0, "suits": ["Red"], "oddsAndEvens": false}`, code: ErrFlagNotTrue, field: "oddsAndEvens"},
		{name: "flag is null", raw: `{"name": "v", "id": 0, "suits": ["Red"], "showSuitNames": null}`, code: ErrWrongType, field: "showSuitNames"},
		{name: "flag is a string", raw: `{"name": "v", "id": 0, "suits": ["Red"], "chimneys": "true"}`, code: ErrWrongType, field: "chimneys"},
		{name: "unknown field", raw: `{"name": "v", "id": 0, "suits": ["Red"], "specialRanks": 1}`, code: ErrUnknownField, field: "specialRanks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := DecodeVariantJSON(7, json.RawMessage(tt.raw))
			if len(errs) == 0 {
				t.Fatalf("expected %s error, got none", tt.code)
			}

			found := false
			for _, v := range errs {
				if v.Code == tt.code && v.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("no %s error on field %q in:\n%s", tt.code, tt.field, errs.Details())
			}
		})
	}
}

func TestDecodeVariantJSONNamesRecord(t *testing.T) {
	_, errs := DecodeVariantJSON(3, json.RawMessage(`{"name": "Named", "id": -4, "suits": []}`))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2:\n%s", len(errs), errs.Details())
	}
	for _, v := range errs {
		if v.Record != "Named" {
			t.Fatalf("Record = %q, want Named", v.Record)
		}
	}

	_, errs = DecodeVariantJSON(3, json.RawMessage(`{"id": 0, "suits": ["Red"]}`))
	if len(errs) != 1 || errs[0].Record != "#3" {
		t.Fatalf("nameless record should be located by index: %s", errs.Details())
	}
}
