package label

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrMalformed reports a label document that could not be decoded.
var ErrMalformed = errors.New("malformed label document")

// Document holds the metadata attributes extracted from a product label.
// String fields keep the raw label text; use the Start/Stop helpers for
// parsed times.
type Document struct {
	// SourceFile is the base name of the file the label was read from.
	SourceFile string

	LID             string
	ProductTypeName string
	StartTime       string
	StopTime        string
	SubInstrument   string
	FilterNumber    string
	ExposureSeconds string
	InstrumentModel string
}

// Start returns the parsed start_date_time.
func (d *Document) Start() (time.Time, error) {
	return parseTimestamp(d.StartTime)
}

// Stop returns the parsed stop_date_time.
func (d *Document) Stop() (time.Time, error) {
	return parseTimestamp(d.StopTime)
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999", "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

// Parse reads and decodes the label at path.
func Parse(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseReader(file, filepath.Base(path))
}

// leaf element local names captured into Document fields. The identifier
// leaf is ambiguous across label dialects, so it is scoped by its parent
// element below.
const (
	elemLID           = "logical_identifier"
	elemStart         = "start_date_time"
	elemStop          = "stop_date_time"
	elemType          = "product_type_name"
	elemIdentifier    = "identifier"
	elemFilter        = "filter_number"
	elemExposure      = "exposure_duration"
	elemModel         = "instrument_version_number"
	parentSubInstr    = "Sub_Instrument"
	parentSubInstrAlt = "Sub-Instrument"
)

// ParseReader decodes a label document from r. sourceFile is recorded on
// the returned Document for reporting and is not otherwise interpreted.
func ParseReader(r io.Reader, sourceFile string) (*Document, error) {
	doc := &Document{SourceFile: sourceFile}
	decoder := xml.NewDecoder(r)

	var stack []string
	sawRoot := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, sourceFile, err)
		}
		switch tok := token.(type) {
		case xml.StartElement:
			sawRoot = true
			stack = append(stack, tok.Name.Local)
			if field := doc.fieldFor(stack); field != nil && *field == "" {
				text, err := collectText(decoder, tok.Name.Local, &stack)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, sourceFile, err)
				}
				*field = strings.TrimSpace(text)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if !sawRoot {
		return nil, fmt.Errorf("%w: %s: no XML content", ErrMalformed, sourceFile)
	}
	return doc, nil
}

// fieldFor maps the current element path to its Document field. Nesting
// depth is intentionally ignored: label writers differ in how deeply they
// bury the discipline areas.
func (d *Document) fieldFor(stack []string) *string {
	name := stack[len(stack)-1]
	switch name {
	case elemLID:
		return &d.LID
	case elemStart:
		return &d.StartTime
	case elemStop:
		return &d.StopTime
	case elemType:
		return &d.ProductTypeName
	case elemFilter:
		return &d.FilterNumber
	case elemExposure:
		return &d.ExposureSeconds
	case elemModel:
		return &d.InstrumentModel
	case elemIdentifier:
		if len(stack) >= 2 {
			parent := stack[len(stack)-2]
			if parent == parentSubInstr || parent == parentSubInstrAlt {
				return &d.SubInstrument
			}
		}
	}
	return nil
}

// collectText consumes tokens until the matching end element, returning
// the accumulated character data. The element that was opened is popped
// from the path stack on return.
func collectText(decoder *xml.Decoder, name string, stack *[]string) (string, error) {
	var builder strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", fmt.Errorf("unterminated element %s: %v", name, err)
		}
		switch tok := token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				builder.Write(tok)
			}
		}
	}
	if len(*stack) > 0 {
		*stack = (*stack)[:len(*stack)-1]
	}
	return builder.String(), nil
}
