package store

import "github.com/etnz/estate"

// Seed provides the collections a Store starts with.
type Seed interface {
	Properties() estate.Properties
	Renovations() estate.Renovations
}

// SampleSeed seeds the demonstration portfolio.
type SampleSeed struct{}

func (SampleSeed) Properties() estate.Properties   { return estate.SampleProperties() }
func (SampleSeed) Renovations() estate.Renovations { return estate.SampleRenovations() }

// EmptySeed seeds empty collections.
type EmptySeed struct{}

func (EmptySeed) Properties() estate.Properties   { return estate.Properties{} }
func (EmptySeed) Renovations() estate.Renovations { return estate.Renovations{} }
