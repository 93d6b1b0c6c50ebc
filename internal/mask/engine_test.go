package mask

import (
	"testing"
)

type stubNames struct{ n int }

func (s *stubNames) Name() string {
	s.n++
	return "Fake Person"
}

type countingObserver map[string]int

func (c countingObserver) FieldMasked(strategy string) { c[strategy]++ }

func TestApplyWithoutRuleIsIdentity(t *testing.T) {
	e := NewEngine(Rules{"email": StrategyHash}, &stubNames{}, nil)

	values := []any{"Jane Doe", 1234, nil, 3.5}
	for _, v := range values {
		if got := e.Apply("name", v); got != v {
			t.Errorf("Apply(name, %#v) = %#v, want unchanged", v, got)
		}
	}
}

func TestApply(t *testing.T) {
	rules := Rules{
		"id":      StrategyFake,
		"email":   StrategyMask,
		"phone":   StrategyPartial,
		"name":    StrategyHash,
		"company": "scramble",
	}
	names := &stubNames{}
	obs := countingObserver{}
	e := NewEngine(rules, names, obs)

	tests := []struct {
		field string
		in    any
		want  any
	}{
		{"id", "3f2a9c1e-0000-4000-8000-000000000000", "Fake Person"},
		{"email", "john.doe@example.com", "*****doe@example.com"},
		{"phone", "555-0100", "555*****"},
		{"name", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"company", "Acme", "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := e.Apply(tt.field, tt.in); got != tt.want {
				t.Errorf("Apply(%s, %v) = %v, want %v", tt.field, tt.in, got, tt.want)
			}
		})
	}

	if names.n != 1 {
		t.Errorf("fake strategy called Name %d times, want 1", names.n)
	}
	for _, s := range []string{"fake", "mask", "partial", "hash"} {
		if obs[s] != 1 {
			t.Errorf("observer[%s] = %d, want 1", s, obs[s])
		}
	}
	if obs["scramble"] != 0 {
		t.Error("unknown strategy should not be observed")
	}
}

func TestApplyCoercesNonStrings(t *testing.T) {
	e := NewEngine(Rules{
		"score": StrategyPartial,
		"code":  StrategyHash,
		"ref":   StrategyMask,
		"id":    StrategyFake,
	}, &stubNames{}, nil)

	if got := e.Apply("score", 123456); got != "123***" {
		t.Errorf("partial on int = %v, want 123***", got)
	}
	if got := e.Apply("code", 42); got != Hash("42") {
		t.Errorf("hash on int = %v, want Hash(\"42\")", got)
	}
	if got := e.Apply("ref", 9876); got != "****" {
		t.Errorf("mask on int = %v, want ****", got)
	}
	if got := e.Apply("id", 7); got != "Fake Person" {
		t.Errorf("fake on int = %v", got)
	}
}

func TestNewEngineCopiesRules(t *testing.T) {
	rules := Rules{"email": StrategyHash}
	e := NewEngine(rules, &stubNames{}, nil)
	rules["email"] = StrategyPartial
	delete(rules, "email")

	if s, ok := e.Rule("email"); !ok || s != StrategyHash {
		t.Errorf("Rule(email) = %v, %v; engine saw caller mutation", s, ok)
	}
}

func TestApplyOnlyFakeDrawsNames(t *testing.T) {
	names := &stubNames{}
	obs := countingObserver{}
	e := NewEngine(Rules{
		"name":  StrategyFake,
		"email": StrategyMask,
		"phone": StrategyPartial,
		"id":    StrategyHash,
		"city":  "redact",
	}, names, obs)

	for _, f := range []string{"name", "email", "phone", "id", "city"} {
		e.Apply(f, 12345)
	}

	if names.n != 1 {
		t.Errorf("Name() called %d times, want 1", names.n)
	}
	if got := e.Apply("city", 12345); got != 12345 {
		t.Errorf("unknown strategy changed value to %#v", got)
	}
	if obs["redact"] != 0 || len(obs) != 4 {
		t.Errorf("observer = %v, want the four known strategies only", obs)
	}
}
