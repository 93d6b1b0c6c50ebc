// Package dataset assembles fake records and generates datasets of them.
package dataset

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/fieldconfig"
	"github.com/zarlcorp/zfake/internal/record"
)

// Base field names, in record order.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldCountry   = "country"
	FieldCompany   = "company"
	FieldCreatedAt = "createdAt"
)

// Custom number fields are drawn from this closed range.
const (
	NumberMin = 1000
	NumberMax = 9999
)

// ErrInvalidCount is returned when a record count is out of range.
var ErrInvalidCount = errors.New("invalid record count")

// BaseFields lists the fixed fields every record starts with.
func BaseFields() []string {
	return []string{
		FieldID, FieldName, FieldEmail, FieldPhone, FieldAddress,
		FieldCity, FieldCountry, FieldCompany, FieldCreatedAt,
	}
}

// Masker anonymizes a base field value.
type Masker interface {
	Apply(field string, value any) any
}

// Counter is told about every assembled record.
type Counter interface {
	RecordGenerated()
}

// Assembler builds single records.
type Assembler struct {
	provider fake.Provider
	masker   Masker
	custom   fieldconfig.CustomFields
}

// NewAssembler creates an assembler. custom is copied.
func NewAssembler(provider fake.Provider, masker Masker, custom fieldconfig.CustomFields) *Assembler {
	cp := make(fieldconfig.CustomFields, len(custom))
	copy(cp, custom)
	return &Assembler{provider: provider, masker: masker, custom: cp}
}

// Assemble produces one record: masked base fields followed by unmasked
// custom fields in declaration order.
func (a *Assembler) Assemble() record.Record {
	p := a.provider
	base := [...]struct {
		name  string
		value any
	}{
		{FieldID, p.UUID()},
		{FieldName, p.Name()},
		{FieldEmail, p.Email()},
		{FieldPhone, p.Phone()},
		{FieldAddress, p.Street()},
		{FieldCity, p.City()},
		{FieldCountry, p.Country()},
		{FieldCompany, p.Company()},
		{FieldCreatedAt, record.String(p.PastTime())},
	}

	r := record.New()
	for _, f := range base {
		r.Set(f.name, a.masker.Apply(f.name, f.value))
	}

	// custom fields go in after masking and are never masked
	for _, f := range a.custom {
		if f.IsNumber() {
			r.Set(f.Name, p.Number(NumberMin, NumberMax))
			continue
		}
		r.Set(f.Name, p.Word())
	}

	return r
}

// Generator produces datasets from an assembler.
type Generator struct {
	asm     *Assembler
	counter Counter
}

// NewGenerator creates a generator. counter may be nil.
func NewGenerator(asm *Assembler, counter Counter) *Generator {
	return &Generator{asm: asm, counter: counter}
}

// Generate assembles n independent records. n == 0 yields an empty,
// non-nil dataset.
func (g *Generator) Generate(n int) (record.Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate %d records: %w", n, ErrInvalidCount)
	}

	ds := make(record.Dataset, 0, n)
	for range n {
		ds = append(ds, g.asm.Assemble())
		if g.counter != nil {
			g.counter.RecordGenerated()
		}
	}
	return ds, nil
}
