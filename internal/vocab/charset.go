package vocab

import (
	"slices"
	"strings"
)

// Charset is a set of runes that remembers insertion order
type Charset struct {
	runes []rune
	seen  map[rune]struct{}
}

// NewCharset creates an empty set
func NewCharset() *Charset {
	return &Charset{seen: make(map[rune]struct{})}
}

// Add inserts r and reports whether it was new
func (c *Charset) Add(r rune) bool {
	if _, ok := c.seen[r]; ok {
		return false
	}
	c.seen[r] = struct{}{}
	c.runes = append(c.runes, r)
	return true
}

// AddString inserts every rune of s
func (c *Charset) AddString(s string) {
	for _, r := range s {
		c.Add(r)
	}
}

// Union adds the runes of other that are not yet present, in other's order
func (c *Charset) Union(other *Charset) {
	for _, r := range other.runes {
		c.Add(r)
	}
}

// Contains reports whether r is in the set
func (c *Charset) Contains(r rune) bool {
	_, ok := c.seen[r]
	return ok
}

// Len returns the number of distinct runes
func (c *Charset) Len() int {
	return len(c.runes)
}

// Runes returns a copy of the runes in insertion order
func (c *Charset) Runes() []rune {
	return slices.Clone(c.runes)
}

// Sorted returns a new set holding the same runes in ascending code point order
func (c *Charset) Sorted() *Charset {
	sorted := NewCharset()
	runes := c.Runes()
	slices.Sort(runes)
	for _, r := range runes {
		sorted.Add(r)
	}
	return sorted
}

// String concatenates the runes in order
func (c *Charset) String() string {
	return string(c.runes)
}

// Join concatenates the runes in order separated by sep
func (c *Charset) Join(sep string) string {
	parts := make([]string, len(c.runes))
	for i, r := range c.runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// Union returns a new set holding the runes of all sets, first-seen order
func Union(sets ...*Charset) *Charset {
	out := NewCharset()
	for _, s := range sets {
		out.Union(s)
	}
	return out
}
