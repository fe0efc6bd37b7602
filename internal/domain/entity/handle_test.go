package entity

import (
	"testing"
)

func TestNormalizeHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain handle", raw: "creator", expected: "creator"},
		{name: "leading at", raw: "@creator", expected: "creator"},
		{name: "multiple leading ats", raw: "@@creator", expected: "creator"},
		{name: "surrounding whitespace", raw: "  creator  ", expected: "creator"},
		{name: "whitespace then at", raw: " @Creator ", expected: "creator"},
		{name: "whitespace between at and handle", raw: "@ creator", expected: "creator"},
		{name: "alternating ats and whitespace", raw: "@ @creator", expected: "creator"},
		{name: "deeply nested ats and whitespace", raw: " @ @ @Creator ", expected: "creator"},
		{name: "only ats and whitespace", raw: " @ @ @ ", expected: ""},
		{name: "mixed case", raw: "CrEaToR", expected: "creator"},
		{name: "empty", raw: "", expected: ""},
		{name: "only whitespace", raw: "   ", expected: ""},
		{name: "only at signs", raw: "@@@", expected: ""},
		{name: "channel id preserved", raw: "UC_x5XG1OV2P6uZZ5FSM9Ttw", expected: "uc_x5xg1ov2p6uzz5fsm9ttw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeHandle(tt.raw); got != tt.expected {
				t.Fatalf("NormalizeHandle(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeHandleIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"@Foo", " FOO ", "foo", "@@ MiXeD @case ", "@ @foo", " @ @ Foo ", ""}
	for _, raw := range inputs {
		once := NormalizeHandle(raw)
		if twice := NormalizeHandle(once); twice != once {
			t.Fatalf("NormalizeHandle not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestNormalizeHandleCaseAndAtInsensitive(t *testing.T) {
	t.Parallel()

	if NormalizeHandle("@Foo") != NormalizeHandle("foo") || NormalizeHandle("foo") != NormalizeHandle(" FOO ") {
		t.Fatalf("expected @Foo, foo and ' FOO ' to normalize identically")
	}
}

func TestHandleSetDeduplicatesByNormalizedValue(t *testing.T) {
	t.Parallel()

	set := NewHandleSet("@Creator", "creator", " CREATOR ", "", "   ", "other")
	if set.Len() != 2 {
		t.Fatalf("expected 2 distinct handles, got %d: %v", set.Len(), set.Values())
	}
	if !set.Contains("@CREATOR") {
		t.Fatalf("expected set to contain @CREATOR by normalized value")
	}

	values := set.Values()
	if values[0] != "creator" || values[1] != "other" {
		t.Fatalf("unexpected sorted values: %v", values)
	}
}

func TestHandleSetUnion(t *testing.T) {
	t.Parallel()

	a := NewHandleSet("one", "two")
	b := NewHandleSet("@Two", "three")

	a.Union(b)
	if a.Len() != 3 {
		t.Fatalf("expected union of 3 handles, got %v", a.Values())
	}
}

func TestPlatformValid(t *testing.T) {
	t.Parallel()

	for _, p := range AllPlatforms() {
		if !p.Valid() {
			t.Fatalf("expected %s to be valid", p)
		}
	}
	if Platform("myspace").Valid() {
		t.Fatalf("expected unknown platform to be invalid")
	}
}
