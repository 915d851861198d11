/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// Catalog is the compiled, read-only variant registry, ordered as the
// variants file declares them. It is safe for concurrent readers.
type Catalog struct {
	variants *orderedmap.OrderedMap
	byID     map[int]*Variant
}

func newCatalog(size int) *Catalog {
	return &Catalog{
		variants: orderedmap.New(),
		byID:     make(map[int]*Variant, size),
	}
}

func (c *Catalog) add(v *Variant) {
	c.variants.Set(v.Name, v)
	c.byID[v.ID] = v
}

// Get returns the variant with the given name.
func (c *Catalog) Get(name string) (*Variant, bool) {
	if c == nil {
		return nil, false
	}
	value, ok := c.variants.Get(name)
	if !ok {
		return nil, false
	}
	return value.(*Variant), true
}

// ByID returns the variant with the given id.
func (c *Catalog) ByID(id int) (*Variant, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.byID[id]
	return v, ok
}

// Names returns the variant names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.variants.Keys()...)
}

// Len returns the number of variants.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// All returns the variants in catalog order.
func (c *Catalog) All() []*Variant {
	if c == nil {
		return nil
	}
	keys := c.variants.Keys()
	out := make([]*Variant, 0, len(keys))
	for _, name := range keys {
		value, _ := c.variants.Get(name)
		out = append(out, value.(*Variant))
	}
	return out
}

// MarshalJSON renders the catalog as an object keyed by variant name, in
// catalog order. Keys go through the JSON encoder, since names may hold
// backslashes or control characters.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.variants.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, _ := c.variants.Get(name)
		body, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
