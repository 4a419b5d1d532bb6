package types

import "sort"

// Field kinds determine how a metadata value is coerced into a record slot.
const (
	KindNumeric   = "numeric"
	KindTimeOfDay = "time-of-day"
	KindBoolText  = "bool-text"
)

// validKinds is the set of recognized field kinds.
var validKinds = map[string]bool{
	KindNumeric:   true,
	KindTimeOfDay: true,
	KindBoolText:  true,
}

// Default field names as they appear in daily-note metadata blocks.
// Lookup is case-sensitive: the labels below are the literal keys of the
// daily-note convention, mixed capitalization included.
const (
	FieldMeditation = "Meditation"
	FieldMood       = "Mood"
	FieldWeight     = "Weight"
	FieldSleepIn    = "sleep-in"
	FieldWakeUp     = "wake-up"
	FieldWorkout    = "Workout"
	FieldAlcohol    = "Alcohol"
)

// FieldSpec declares one recognized metadata field.
type FieldSpec struct {
	Name string // Literal key in the metadata block.
	Kind string // One of the Kind constants.
}

// Schema is an immutable mapping from field name to FieldSpec. It is built
// once at process start; keys not present in the schema are ignored during
// parsing, which keeps the pipeline forward-compatible with metadata blocks
// carrying extra, unmodeled fields.
type Schema map[string]FieldSpec

// DefaultSchema returns the standard daylog field registration.
func DefaultSchema() Schema {
	fields := []FieldSpec{
		{Name: FieldMeditation, Kind: KindNumeric},
		{Name: FieldMood, Kind: KindNumeric},
		{Name: FieldWeight, Kind: KindNumeric},
		{Name: FieldSleepIn, Kind: KindTimeOfDay},
		{Name: FieldWakeUp, Kind: KindTimeOfDay},
		{Name: FieldWorkout, Kind: KindBoolText},
		{Name: FieldAlcohol, Kind: KindBoolText},
	}
	s := make(Schema, len(fields))
	for _, f := range fields {
		s[f.Name] = f
	}
	return s
}

// IsValidKind reports whether the given string is a recognized field kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}

// FieldsOfKind returns the names of all schema fields with the given kind,
// sorted for deterministic iteration.
func (s Schema) FieldsOfKind(kind string) []string {
	var names []string
	for name, spec := range s {
		if spec.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns all schema field names, sorted.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
