package product

import (
	"fmt"
	"time"

	"proctools/internal/label"
)

// TypeObservation is the type tag for camera observation products.
const TypeObservation = "observation"

// Observation is a single camera exposure. Observations order by their
// acquisition start time.
type Observation struct {
	doc   *label.Document
	start time.Time
}

// NewObservation builds an Observation from a parsed label.
func NewObservation(doc *label.Document) (Product, error) {
	start, err := doc.Start()
	if err != nil {
		return nil, fmt.Errorf("observation start time: %w", err)
	}
	return &Observation{doc: doc, start: start}, nil
}

func (o *Observation) Type() string     { return TypeObservation }
func (o *Observation) Identity() string { return o.doc.LID }

// Start returns the acquisition start time.
func (o *Observation) Start() time.Time { return o.start }

// Camera returns the sub-instrument identifier the frame was taken with.
func (o *Observation) Camera() string { return o.doc.SubInstrument }

// FilterNumber returns the optical filter the frame was taken through.
func (o *Observation) FilterNumber() string { return o.doc.FilterNumber }

// ExposureSeconds returns the exposure duration as labelled.
func (o *Observation) ExposureSeconds() string { return o.doc.ExposureSeconds }

func (o *Observation) Precedes(other Product) bool {
	if obs, ok := other.(*Observation); ok {
		if !o.start.Equal(obs.start) {
			return o.start.Before(obs.start)
		}
	}
	return o.Identity() < other.Identity()
}

// IsApplicable reports whether other was acquired by the same camera.
func (o *Observation) IsApplicable(other Product) bool {
	return sameCamera(o.doc.SubInstrument, other)
}

// Matches is never true for observations; they are targets of matching,
// not candidates.
func (o *Observation) Matches(other Product) bool { return false }

// cameraCarrier is satisfied by any product acquired through a specific
// sub-instrument.
type cameraCarrier interface {
	Camera() string
}

func sameCamera(camera string, other Product) bool {
	carrier, ok := other.(cameraCarrier)
	if !ok {
		return false
	}
	return camera != "" && carrier.Camera() == camera
}
