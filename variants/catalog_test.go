package variants

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCatalogPreservesOrder(t *testing.T) {
	c := mustCompile(t, `[
		{"name": "Zebra", "id": 2, "suits": ["Red"]},
		{"name": "Alpha", "id": 0, "suits": ["Blue"]},
		{"name": "Middle", "id": 1, "suits": ["Green"]}
	]`)

	if got, want := c.Names(), []string{"Zebra", "Alpha", "Middle"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	all := c.All()
	if len(all) != 3 || all[0].Name != "Zebra" || all[2].Name != "Middle" {
		t.Fatalf("All() out of order")
	}

	if v, ok := c.ByID(1); !ok || v.Name != "Middle" {
		t.Fatalf("ByID(1) = %v, %v", v, ok)
	}
	if _, ok := c.Get("Nope"); ok {
		t.Fatalf("Get() found a variant that does not exist")
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	if !(strings.Index(text, `"Zebra"`) < strings.Index(text, `"Alpha"`) && strings.Index(text, `"Alpha"`) < strings.Index(text, `"Middle"`)) {
		t.Fatalf("JSON output out of catalog order: %s", text)
	}
}

func TestCatalogNamesIsACopy(t *testing.T) {
	c := mustCompile(t, `[{"name": "Only", "id": 0, "suits": ["Red"]}]`)

	names := c.Names()
	names[0] = "Changed"

	if _, ok := c.Get("Only"); !ok || c.Names()[0] != "Only" {
		t.Fatalf("mutating Names() leaked into the catalog")
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Names() != nil || c.All() != nil {
		t.Fatalf("nil catalog should be empty")
	}
	if _, ok := c.Get("No Variant"); ok {
		t.Fatalf("nil catalog Get() = ok")
	}
}

func TestVariantMarshalJSON(t *testing.T) {
	c := mustCompile(t, `[{"name": "Orange (2 Suits)", "id": 5, "suits": ["Red", "Orange"], "funnels": true}]`)

	data, err := json.Marshal(mustVariant(t, c, "Orange (2 Suits)"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["name"] != "Orange (2 Suits)" || out["maxScore"].(float64) != 10 || out["funnels"] != true {
		t.Fatalf("unexpected JSON: %s", data)
	}
	if !reflect.DeepEqual(out["suits"], []any{"Red", "Orange"}) {
		t.Fatalf("suits = %v", out["suits"])
	}
	if out["identityNotePattern"] == "" {
		t.Fatalf("identityNotePattern missing: %s", data)
	}
}

func TestCatalogMarshalJSONEscapesNames(t *testing.T) {
	c := mustCompile(t, `[
		{"name": "Back\\slash", "id": 0, "suits": ["Red"]},
		{"name": "Tab\tbed", "id": 1, "suits": ["Blue"]},
		{"name": "Quote \"d\"", "id": 2, "suits": ["Green"]}
	]`)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("catalog JSON does not parse: %v\n%s", err, data)
	}

	for name, id := range map[string]int{"Back\\slash": 0, "Tab\tbed": 1, "Quote \"d\"": 2} {
		v, ok := out[name]
		if !ok || v.ID != id {
			t.Errorf("%q: got %+v, %v", name, v, ok)
		}
	}
}
