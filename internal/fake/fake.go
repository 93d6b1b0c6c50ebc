// Package fake supplies realistic synthetic values per semantic type.
// The default implementation is backed by gofakeit.
package fake

import "time"

// Provider produces one fake value per call for each semantic type.
type Provider interface {
	UUID() string
	Name() string
	Email() string
	Phone() string
	Street() string
	City() string
	Country() string
	Company() string
	PastTime() time.Time
	Number(min, max int) int
	Word() string
}
