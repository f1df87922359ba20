// Package testsupport holds helpers for constructing test fixtures:
// throwaway configs and synthetic product label files.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Label describes a synthetic product label. Empty fields are omitted
// from the rendered document.
type Label struct {
	LID      string
	Type     string
	Start    string
	Stop     string
	Camera   string
	Filter   string
	Exposure string
	Model    string
}

// WriteLabel renders l as a label document named name under dir and
// returns the file path.
func WriteLabel(t testing.TB, dir, name string, l Label) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<Product_Observational>\n")
	b.WriteString("  <Identification_Area>\n")
	if l.LID != "" {
		fmt.Fprintf(&b, "    <logical_identifier>%s</logical_identifier>\n", l.LID)
	}
	b.WriteString("  </Identification_Area>\n")
	b.WriteString("  <Observation_Area>\n")
	if l.Start != "" || l.Stop != "" {
		b.WriteString("    <Time_Coordinates>\n")
		if l.Start != "" {
			fmt.Fprintf(&b, "      <start_date_time>%s</start_date_time>\n", l.Start)
		}
		if l.Stop != "" {
			fmt.Fprintf(&b, "      <stop_date_time>%s</stop_date_time>\n", l.Stop)
		}
		b.WriteString("    </Time_Coordinates>\n")
	}
	if l.Type != "" {
		b.WriteString("    <Mission_Information>\n")
		fmt.Fprintf(&b, "      <product_type_name>%s</product_type_name>\n", l.Type)
		b.WriteString("    </Mission_Information>\n")
	}
	if l.Camera != "" {
		b.WriteString("    <Sub_Instrument>\n")
		fmt.Fprintf(&b, "      <identifier>%s</identifier>\n", l.Camera)
		b.WriteString("    </Sub_Instrument>\n")
	}
	if l.Filter != "" {
		b.WriteString("    <Optical_Filter>\n")
		fmt.Fprintf(&b, "      <filter_number>%s</filter_number>\n", l.Filter)
		b.WriteString("    </Optical_Filter>\n")
	}
	if l.Exposure != "" {
		b.WriteString("    <Exposure>\n")
		fmt.Fprintf(&b, "      <exposure_duration>%s</exposure_duration>\n", l.Exposure)
		b.WriteString("    </Exposure>\n")
	}
	if l.Model != "" {
		b.WriteString("    <Instrument_Information>\n")
		fmt.Fprintf(&b, "      <instrument_version_number>%s</instrument_version_number>\n", l.Model)
		b.WriteString("    </Instrument_Information>\n")
	}
	b.WriteString("  </Observation_Area>\n")
	b.WriteString("</Product_Observational>\n")

	return writeFile(t, dir, name, b.String())
}

// WriteObservation writes an observation label with sensible defaults.
func WriteObservation(t testing.TB, dir, lid, start, camera, filter string) string {
	t.Helper()
	return WriteLabel(t, dir, lid+".xml", Label{
		LID:      lid,
		Type:     "observation",
		Start:    start,
		Camera:   camera,
		Filter:   filter,
		Exposure: "0.084",
	})
}

// WriteFlat writes a rad-flat-prm calibration label.
func WriteFlat(t testing.TB, dir, lid, camera, filter string) string {
	t.Helper()
	return WriteLabel(t, dir, lid+".xml", Label{
		LID:    lid,
		Type:   "rad-flat-prm",
		Camera: camera,
		Filter: filter,
		Model:  "FM",
	})
}

// WriteDark writes a rad-dark-prm calibration label.
func WriteDark(t testing.TB, dir, lid, camera, exposure string) string {
	t.Helper()
	return WriteLabel(t, dir, lid+".xml", Label{
		LID:      lid,
		Type:     "rad-dark-prm",
		Camera:   camera,
		Exposure: exposure,
	})
}

// WriteMalformed writes a file with the label extension that is not
// well-formed XML.
func WriteMalformed(t testing.TB, dir, name string) string {
	t.Helper()
	return writeFile(t, dir, name, "<Product_Observational><unclosed>\n")
}

// WriteUntyped writes a well-formed label that declares no product type.
func WriteUntyped(t testing.TB, dir, name, lid string) string {
	t.Helper()
	return WriteLabel(t, dir, name, Label{LID: lid})
}

func writeFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write label %s: %v", path, err)
	}
	return path
}
