package vocab

import (
	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/ocrtrain/internal/labels"
)

// Order selects how extracted characters are ordered
type Order int

const (
	// FirstSeen keeps the order in which characters were first encountered
	FirstSeen Order = iota
	// CodePoint sorts characters by ascending code point
	CodePoint
)

// String returns the flag spelling of the order
func (o Order) String() string {
	switch o {
	case FirstSeen:
		return "first-seen"
	case CodePoint:
		return "code-point"
	default:
		return "unknown"
	}
}

// Extractor collects the distinct characters of label file transcriptions
type Extractor struct {
	Order Order

	// Normalize applies Unicode NFC to each transcription before scanning
	Normalize bool
}

// Extract folds the characters of every file in paths into one set.
// Files are scanned in the given order and the set is never reset between
// them. The first error aborts the fold and is returned unmodified.
func (e Extractor) Extract(paths ...string) (*Charset, error) {
	acc := NewCharset()
	for _, path := range paths {
		if err := e.ExtractFile(path, acc); err != nil {
			return nil, err
		}
	}

	if e.Order == CodePoint {
		return acc.Sorted(), nil
	}
	return acc, nil
}

// ExtractFile adds the characters of one label file to acc in first-seen order
func (e Extractor) ExtractFile(path string, acc *Charset) error {
	return labels.Each(path, func(rec labels.Record) error {
		text := rec.Transcription
		if e.Normalize {
			text = norm.NFC.String(text)
		}
		acc.AddString(text)
		return nil
	})
}
