package domain

import "strings"

// Field identifies one of the numeric hero attributes that can be filtered on.
type Field string

// Filterable hero attributes
const (
	FieldIntelligence Field = "intelligence"
	FieldStrength     Field = "strength"
	FieldSpeed        Field = "speed"
	FieldPower        Field = "power"
)

// StatFields lists the filterable attributes in the order filters are
// parsed and reported.
var StatFields = []Field{FieldIntelligence, FieldStrength, FieldSpeed, FieldPower}

// Valid reports whether f is a known attribute.
func (f Field) Valid() bool {
	switch f {
	case FieldIntelligence, FieldStrength, FieldSpeed, FieldPower:
		return true
	default:
		return false
	}
}

// Operator is a comparison applied by a StatFilter.
type Operator string

// Supported comparison operators
const (
	OpEq  Operator = "eq"
	OpLte Operator = "lte"
	OpGte Operator = "gte"
)

// ParseOperator converts a query parameter into an Operator. Empty and
// unrecognized values fall back to OpEq.
func ParseOperator(s string) Operator {
	switch Operator(strings.ToLower(strings.TrimSpace(s))) {
	case OpLte:
		return OpLte
	case OpGte:
		return OpGte
	default:
		return OpEq
	}
}

// StatFilter is a single (field, operator, value) condition.
type StatFilter struct {
	Field Field
	Op    Operator
	Value int
}

// Matches evaluates the filter against a hero.
func (f StatFilter) Matches(h *Hero) bool {
	v := h.Stat(f.Field)
	switch f.Op {
	case OpLte:
		return v <= f.Value
	case OpGte:
		return v >= f.Value
	default:
		return v == f.Value
	}
}

// HeroQuery is a conjunction of an optional exact, case-insensitive name
// match and any number of attribute filters.
type HeroQuery struct {
	Name  string
	Stats []StatFilter
}

// Matches reports whether a hero satisfies every condition in the query.
func (q HeroQuery) Matches(h *Hero) bool {
	if q.Name != "" && !strings.EqualFold(q.Name, h.Name) {
		return false
	}
	for _, f := range q.Stats {
		if !f.Matches(h) {
			return false
		}
	}
	return true
}
