package domain

import (
	"encoding/json"
	"strings"
)

// categorySeparator joins a top-level category with its subcategory in the
// stored form, e.g. "Food / Lunch".
const categorySeparator = " / "

// Category identifies a spending grouping. Top is always set; Sub is empty
// for a bare top-level category. Two categories are the same only when both
// fields match exactly, so "Food" and "Food / Lunch" are distinct.
type Category struct {
	Top string
	Sub string
}

// NewCategory builds a Category from its parts.
func NewCategory(top, sub string) Category {
	return Category{Top: strings.TrimSpace(top), Sub: strings.TrimSpace(sub)}
}

// ParseCategory splits a composed category string on the first "/". Both
// sides are trimmed. A string without a "/" is a bare top-level category.
func ParseCategory(s string) Category {
	top, sub, found := strings.Cut(s, "/")
	if !found {
		return Category{Top: strings.TrimSpace(s)}
	}
	return Category{Top: strings.TrimSpace(top), Sub: strings.TrimSpace(sub)}
}

// String returns the composed storage form, "Top / Sub" or just "Top".
func (c Category) String() string {
	if c.Sub == "" {
		return c.Top
	}
	return c.Top + categorySeparator + c.Sub
}

// IsZero reports whether the category is empty.
func (c Category) IsZero() bool {
	return c.Top == "" && c.Sub == ""
}

// MarshalJSON stores the category as its composed string so persisted data
// matches the historical format.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Category) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = ParseCategory(value)
	return nil
}
