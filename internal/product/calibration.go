package product

import (
	"proctools/internal/label"
)

// Calibration reference product type tags.
const (
	TypeRadFlat = "rad-flat-prm"
	TypeRadDark = "rad-dark-prm"
)

// RadFlat is a radiometric flat-field reference frame. A flat is
// applicable to anything from the same camera and matches a specific
// observation when the optical filter also agrees.
type RadFlat struct {
	doc *label.Document
}

// NewRadFlat builds a RadFlat from a parsed label.
func NewRadFlat(doc *label.Document) (Product, error) {
	return &RadFlat{doc: doc}, nil
}

func (f *RadFlat) Type() string         { return TypeRadFlat }
func (f *RadFlat) Identity() string     { return f.doc.LID }
func (f *RadFlat) Camera() string       { return f.doc.SubInstrument }
func (f *RadFlat) FilterNumber() string { return f.doc.FilterNumber }

// Model returns the instrument version the reference was produced for.
func (f *RadFlat) Model() string { return f.doc.InstrumentModel }

func (f *RadFlat) Precedes(other Product) bool {
	return f.Identity() < other.Identity()
}

func (f *RadFlat) IsApplicable(other Product) bool {
	return sameCamera(f.doc.SubInstrument, other)
}

func (f *RadFlat) Matches(other Product) bool {
	if !f.IsApplicable(other) {
		return false
	}
	carrier, ok := other.(interface{ FilterNumber() string })
	if !ok {
		return false
	}
	return f.doc.FilterNumber != "" && carrier.FilterNumber() == f.doc.FilterNumber
}

// RadDark is a dark-current reference frame. A dark matches a specific
// observation when camera and exposure duration agree.
type RadDark struct {
	doc *label.Document
}

// NewRadDark builds a RadDark from a parsed label.
func NewRadDark(doc *label.Document) (Product, error) {
	return &RadDark{doc: doc}, nil
}

func (d *RadDark) Type() string     { return TypeRadDark }
func (d *RadDark) Identity() string { return d.doc.LID }
func (d *RadDark) Camera() string   { return d.doc.SubInstrument }

// ExposureSeconds returns the exposure duration the dark was taken at.
func (d *RadDark) ExposureSeconds() string { return d.doc.ExposureSeconds }

func (d *RadDark) Precedes(other Product) bool {
	return d.Identity() < other.Identity()
}

func (d *RadDark) IsApplicable(other Product) bool {
	return sameCamera(d.doc.SubInstrument, other)
}

func (d *RadDark) Matches(other Product) bool {
	if !d.IsApplicable(other) {
		return false
	}
	carrier, ok := other.(interface{ ExposureSeconds() string })
	if !ok {
		return false
	}
	return d.doc.ExposureSeconds != "" && carrier.ExposureSeconds() == d.doc.ExposureSeconds
}
