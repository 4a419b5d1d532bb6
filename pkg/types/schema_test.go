package types

import "testing"

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()

	cases := map[string]string{
		FieldMeditation: KindNumeric,
		FieldMood:       KindNumeric,
		FieldWeight:     KindNumeric,
		FieldSleepIn:    KindTimeOfDay,
		FieldWakeUp:     KindTimeOfDay,
		FieldWorkout:    KindBoolText,
		FieldAlcohol:    KindBoolText,
	}
	if len(s) != len(cases) {
		t.Fatalf("expected %d fields, got %d", len(cases), len(s))
	}
	for name, kind := range cases {
		spec, ok := s[name]
		if !ok {
			t.Fatalf("missing field %q", name)
		}
		if spec.Kind != kind {
			t.Fatalf("field %q: expected kind %s, got %s", name, kind, spec.Kind)
		}
	}
}

func TestSchemaLookupIsCaseSensitive(t *testing.T) {
	s := DefaultSchema()
	if _, ok := s["meditation"]; ok {
		t.Fatal("lowercase lookup must not match the Meditation field")
	}
	if _, ok := s["Sleep-In"]; ok {
		t.Fatal("capitalized lookup must not match the sleep-in field")
	}
}

func TestFieldsOfKindSorted(t *testing.T) {
	s := DefaultSchema()
	got := s.FieldsOfKind(KindNumeric)
	want := []string{FieldMeditation, FieldMood, FieldWeight}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestIsValidKind(t *testing.T) {
	for _, k := range []string{KindNumeric, KindTimeOfDay, KindBoolText} {
		if !IsValidKind(k) {
			t.Fatalf("expected %q to be valid", k)
		}
	}
	if IsValidKind("duration") {
		t.Fatal("unknown kind must not validate")
	}
}
