package mask

import (
	"github.com/zarlcorp/zfake/internal/record"
)

// Rules maps a field name to the strategy applied to it.
type Rules map[string]Strategy

// NameSource supplies replacement names for the fake strategy.
type NameSource interface {
	Name() string
}

// Observer is told about every value a strategy handled.
type Observer interface {
	FieldMasked(strategy string)
}

// Engine applies Rules to field values.
type Engine struct {
	rules    Rules
	names    NameSource
	observer Observer
}

// NewEngine creates an engine. rules is copied; names backs the fake
// strategy; observer may be nil.
func NewEngine(rules Rules, names NameSource, observer Observer) *Engine {
	cp := make(Rules, len(rules))
	for k, v := range rules {
		cp[k] = v
	}
	return &Engine{rules: cp, names: names, observer: observer}
}

// Rule returns the strategy configured for field.
func (e *Engine) Rule(field string) (Strategy, bool) {
	s, ok := e.rules[field]
	return s, ok
}

// Apply anonymizes value per the rule for field. Fields without a rule and
// fields with an unknown strategy come back unchanged. Non-string values are
// coerced with record.String before mask, partial and hash.
func (e *Engine) Apply(field string, value any) any {
	s, ok := e.Rule(field)
	if !ok {
		return value
	}

	out, applied := e.apply(s, value)
	if applied && e.observer != nil {
		e.observer.FieldMasked(s.String())
	}
	return out
}

func (e *Engine) apply(s Strategy, value any) (any, bool) {
	if !s.Valid() {
		return value, false
	}
	if s.TypeAgnostic() {
		return e.names.Name(), true
	}

	str := record.String(value)
	switch s {
	case StrategyMask:
		return Email(str), true
	case StrategyPartial:
		return Partial(str), true
	default:
		return Hash(str), true
	}
}
