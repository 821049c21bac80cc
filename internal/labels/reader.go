package labels

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileName is the conventional name of a dataset's label file
const FileName = "labels.csv"

// ErrInvalidUTF8 is returned when a transcription is not valid UTF-8
var ErrInvalidUTF8 = errors.New("invalid UTF-8 in transcription")

// Warnings receives notices about rows whose extra fields are ignored
var Warnings io.Writer = os.Stderr

// Record is one row of a label file
type Record struct {
	Filename      string
	Transcription string
}

// Each streams the records of the label file at path to fn.
// Rows with fewer than two fields and a leading "filename,..." header are
// skipped. Errors from opening or parsing the file are returned as is.
func Each(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scan(path, f, fn)
}

// Read returns all records of the label file at path
func Read(path string) ([]Record, error) {
	var records []Record
	err := Each(path, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func scan(path string, r io.Reader, fn func(Record) error) error {
	// Strip a UTF-8 byte order mark left by spreadsheet exports, bytes are
	// passed through otherwise so invalid encodings can be reported
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		if len(row) < 2 {
			continue
		}

		line, _ := reader.FieldPos(1)
		if !utf8.ValidString(row[1]) {
			return fmt.Errorf("%s:%d: %w", path, line, ErrInvalidUTF8)
		}
		if len(row) > 2 {
			fmt.Fprintf(Warnings, "Warning: %s:%d has %d fields, only the second is used as transcription (quote it to keep commas)\n", path, line, len(row))
		}

		if err := fn(Record{Filename: row[0], Transcription: row[1]}); err != nil {
			return err
		}
	}
}

// isHeader reports whether row looks like a "filename,words" header
func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "filename")
}
