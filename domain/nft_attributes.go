package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Trait is the name/value shape most marketplaces use for metadata attributes
type Trait struct {
	Name      string      `json:"name"`
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

func (t Trait) Key() string {
	if len(t.Name) > 0 {
		return t.Name
	}
	return t.TraitType
}

// MergeRaw merges metadata attributes into e. An object contributes its keys
// in document order, an array of traits contributes name -> value. Empty and
// null input is a no-op.
func (e *ExtraAttributes) MergeRaw(raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '{':
		var attrs Attributes
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return err
		}
		for _, k := range attrs.Extra.Keys() {
			v, _ := attrs.Extra.Get(k)
			e.Set(k, v)
		}
		return nil
	case '[':
		var traits []Trait
		if err := json.Unmarshal(raw, &traits); err != nil {
			return err
		}
		e.MergeTraits(traits)
		return nil
	default:
		return fmt.Errorf("%w: attributes must be an object or an array", ErrInvalidJsonFormat)
	}
}

// MergeTraits skips traits without a key
func (e *ExtraAttributes) MergeTraits(traits []Trait) {
	for _, t := range traits {
		if k := t.Key(); len(k) > 0 {
			e.Set(k, t.Value)
		}
	}
}
