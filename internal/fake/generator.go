package fake

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

var _ Provider = (*Generator)(nil)

// Generator produces fake values with gofakeit.
// A Generator is not safe for concurrent use.
type Generator struct {
	f *gofakeit.Faker
}

// New creates a generator. A zero seed picks a random one; any other seed
// makes the sequence of values reproducible.
func New(seed uint64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

// UUID generates a random version 4 UUID string.
func (g *Generator) UUID() string {
	return g.f.UUID()
}

// Name generates a "First Last" full name.
func (g *Generator) Name() string {
	return g.f.Name()
}

// Email generates an email address.
func (g *Generator) Email() string {
	return g.f.Email()
}

// Phone generates a formatted phone number.
func (g *Generator) Phone() string {
	return g.f.PhoneFormatted()
}

// Street generates a street address like "1234 Oak Ave".
func (g *Generator) Street() string {
	return g.f.Street()
}

// City generates a city name.
func (g *Generator) City() string {
	return g.f.City()
}

// Country generates a country name.
func (g *Generator) Country() string {
	return g.f.Country()
}

// Company generates a company name.
func (g *Generator) Company() string {
	return g.f.Company()
}

// PastTime generates a UTC time in the past.
func (g *Generator) PastTime() time.Time {
	return g.f.PastDate().UTC()
}

// Number generates an integer in [min, max].
func (g *Generator) Number(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return g.f.Number(min, max)
}

// Word generates a single dictionary word.
func (g *Generator) Word() string {
	return g.f.Word()
}
