// Package model contains domain models passed between layers.
package model

// HitRecord represents one channel hit in the flattened run dataset.
// Fields mirror the columns of the tabular input.
type HitRecord struct {
	EventID      int64   // physics event the hit belongs to
	Layer        int     // detection plane index along the beam axis
	Channel      int     // pad index within the layer (row-major on the pad grid)
	Amplitude    float64 // per-hit measured signal, ADC counts
	ShowerEnergy float64 // event-level reconstructed energy, repeated on every row of the event
}

// Histogram is the numeric artifact behind a 1D histogram chart.
// Edges are strictly increasing; Counts is parallel to the bins between them.
type Histogram struct {
	Edges   []float64
	Counts  []float64
	Mean    float64
	Std     float64 // population standard deviation
	Entries int
}

// ProfilePoint is one layer's entry in the longitudinal shower profile.
type ProfilePoint struct {
	Layer int
	Mean  float64
	SEM   float64 // standard error of the mean
}
