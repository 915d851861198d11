package variants

import (
	"strings"
	"testing"
)

const testColorsJSON = `[
  {"name": "Red"}, {"name": "Yellow"}, {"name": "Green"}, {"name": "Blue"}, {"name": "Purple"},
  {"name": "Teal"}, {"name": "Black", "abbreviation": "K"}
]`

const testSuitsJSON = `[
  {"name": "Red"}, {"name": "Yellow"}, {"name": "Green"}, {"name": "Blue"}, {"name": "Purple"},
  {"name": "Teal"},
  {"name": "Black", "abbreviation": "K"},
  {"name": "Rainbow", "abbreviation": "R", "allClueColors": true},
  {"name": "Dark Rainbow", "abbreviation": "M", "allClueColors": true},
  {"name": "Multi", "abbreviation": "M", "allClueColors": true},
  {"name": "Fire", "abbreviation": "R", "clueColors": ["Red"]},
  {"name": "Dark", "abbreviation": "R", "clueColors": ["Black"]},
  {"name": "Jet", "displayName": "R-2 Jet", "abbreviation": "R", "clueColors": ["Black"]},
  {"name": "Orange", "abbreviation": "O", "clueColors": ["Red", "Yellow"]},
  {"name": "Null", "abbreviation": "U", "clueColors": []},
  {"name": "White", "abbreviation": "W", "noClueColors": true},
  {"name": "Teal Reversed", "displayName": "Teal", "abbreviation": "T", "clueColors": ["Teal"], "reversed": true}
]`

func testTables(t *testing.T) (ColorTable, SuitTable) {
	t.Helper()

	colors, err := LoadColors([]byte(testColorsJSON))
	if err != nil {
		t.Fatalf("LoadColors() error = %v", err)
	}
	colorTable := IndexColors(colors)

	suits, err := LoadSuits([]byte(testSuitsJSON), colorTable)
	if err != nil {
		t.Fatalf("LoadSuits() error = %v", err)
	}
	return colorTable, IndexSuits(suits)
}

func compileTest(t *testing.T, catalog string) (*Catalog, error) {
	t.Helper()

	colors, suits := testTables(t)
	return Compile(colors, suits, StartCardRank, []byte(catalog))
}

func mustCompile(t *testing.T, catalog string) *Catalog {
	t.Helper()

	c, err := compileTest(t, catalog)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return c
}

func mustVariant(t *testing.T, c *Catalog, name string) *Variant {
	t.Helper()

	v, ok := c.Get(name)
	if !ok {
		t.Fatalf("variant %q missing from catalog %v", name, c.Names())
	}
	return v
}

func wantValidation(t *testing.T, err error, code ErrorCode, fragments ...string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !HasCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}

	list, _ := AsValidations(err)
	details := ValidationList(list).Details()
	for _, fragment := range fragments {
		if !strings.Contains(details, fragment) {
			t.Fatalf("error %q does not mention %q", details, fragment)
		}
	}
}
