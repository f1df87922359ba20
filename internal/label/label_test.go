package label_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"proctools/internal/label"
	"proctools/internal/testsupport"
)

func TestParseExtractsMetadata(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteLabel(t, dir, "obs-001.xml", testsupport.Label{
		LID:      "urn:nasa:pds:mission:obs-001",
		Type:     "observation",
		Start:    "2024-03-01T10:00:00Z",
		Stop:     "2024-03-01T10:00:01Z",
		Camera:   "cam-a",
		Filter:   "3",
		Exposure: "0.084",
		Model:    "FM",
	})

	doc, err := label.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.SourceFile != "obs-001.xml" {
		t.Fatalf("unexpected source file %q", doc.SourceFile)
	}
	if doc.LID != "urn:nasa:pds:mission:obs-001" {
		t.Fatalf("unexpected LID %q", doc.LID)
	}
	if doc.ProductTypeName != "observation" {
		t.Fatalf("unexpected type %q", doc.ProductTypeName)
	}
	if doc.SubInstrument != "cam-a" || doc.FilterNumber != "3" || doc.ExposureSeconds != "0.084" || doc.InstrumentModel != "FM" {
		t.Fatalf("unexpected instrument fields: %#v", doc)
	}

	start, err := doc.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time %v", start)
	}
	stop, err := doc.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !stop.After(start) {
		t.Fatalf("expected stop after start, got %v", stop)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"rfc3339", "2024-03-01T10:00:00Z"},
		{"fractional no zone", "2024-03-01T10:00:00.123"},
		{"seconds no zone", "2024-03-01T10:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := &label.Document{StartTime: tc.value}
			if _, err := doc.Start(); err != nil {
				t.Fatalf("Start(%q) failed: %v", tc.value, err)
			}
		})
	}

	doc := &label.Document{StartTime: "yesterday"}
	if _, err := doc.Start(); err == nil {
		t.Fatal("expected error for unsupported timestamp")
	}
	empty := &label.Document{}
	if _, err := empty.Start(); err == nil {
		t.Fatal("expected error for missing timestamp")
	}
}

func TestParseReaderIgnoresNestingDepth(t *testing.T) {
	// Some label writers bury the discipline areas arbitrarily deep.
	const deep = `<?xml version="1.0"?>
<Product_Observational>
  <Wrapper>
    <Identification_Area>
      <logical_identifier>deep-001</logical_identifier>
    </Identification_Area>
    <Deeper>
      <Mission_Information>
        <product_type_name>observation</product_type_name>
      </Mission_Information>
      <Sub-Instrument>
        <identifier>cam-z</identifier>
      </Sub-Instrument>
    </Deeper>
  </Wrapper>
</Product_Observational>`

	doc, err := label.ParseReader(strings.NewReader(deep), "deep.xml")
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if doc.LID != "deep-001" || doc.ProductTypeName != "observation" || doc.SubInstrument != "cam-z" {
		t.Fatalf("unexpected document: %#v", doc)
	}
}

func TestParseIdentifierRequiresSubInstrumentParent(t *testing.T) {
	const stray = `<Product_Observational>
  <Telemetry>
    <identifier>not-a-camera</identifier>
  </Telemetry>
</Product_Observational>`

	doc, err := label.ParseReader(strings.NewReader(stray), "stray.xml")
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if doc.SubInstrument != "" {
		t.Fatalf("expected identifier outside Sub_Instrument to be ignored, got %q", doc.SubInstrument)
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	const doubled = `<Product_Observational>
  <Identification_Area>
    <logical_identifier>first</logical_identifier>
    <logical_identifier>second</logical_identifier>
  </Identification_Area>
</Product_Observational>`

	doc, err := label.ParseReader(strings.NewReader(doubled), "doubled.xml")
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if doc.LID != "first" {
		t.Fatalf("expected first occurrence to win, got %q", doc.LID)
	}
}

func TestParseMalformedDocuments(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unclosed element", "<Product_Observational><unclosed>\n"},
		{"not xml", "PDS_VERSION_ID = PDS3\n"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := label.ParseReader(strings.NewReader(tc.content), tc.name+".xml")
			if !errors.Is(err, label.ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := label.Parse(t.TempDir() + "/absent.xml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, label.ErrMalformed) {
		t.Fatalf("missing file must not classify as malformed: %v", err)
	}
}
