// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"sort"
	"strings"
)

// Platform identifies a supported social media platform.
type Platform string

// Supported platforms.
const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
)

// AllPlatforms returns every platform the tracker knows about.
func AllPlatforms() []Platform {
	return []Platform{PlatformTikTok, PlatformInstagram, PlatformYouTube}
}

// Valid reports whether the platform is one of the supported values.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube:
		return true
	}

	return false
}

// NormalizeHandle converts a raw platform handle into its canonical comparable
// form: surrounding whitespace trimmed, leading '@' characters stripped,
// lower-cased. Trimming and stripping repeat until the value is stable, so
// inputs like "@ @foo" reach their final form in one call and normalizing an
// already-normalized value is a no-op. The empty string means "no handle" and
// must be excluded from every handle set.
func NormalizeHandle(raw string) string {
	h := strings.ToLower(strings.TrimSpace(raw))
	for {
		next := strings.TrimSpace(strings.TrimLeft(h, "@"))
		if next == h {
			return h
		}
		h = next
	}
}

// HandleSet is a set of canonical handles keyed by normalized value.
// The zero value is not usable; construct with NewHandleSet.
type HandleSet map[string]struct{}

// NewHandleSet builds a set from raw handles, normalizing each and dropping
// empties.
func NewHandleSet(raw ...string) HandleSet {
	set := make(HandleSet, len(raw))
	for _, r := range raw {
		set.Add(r)
	}

	return set
}

// Add normalizes the handle and inserts it. Empty results are ignored.
func (s HandleSet) Add(raw string) {
	h := NormalizeHandle(raw)
	if h == "" {
		return
	}
	s[h] = struct{}{}
}

// Contains reports membership by normalized value.
func (s HandleSet) Contains(raw string) bool {
	_, ok := s[NormalizeHandle(raw)]

	return ok
}

// Union merges another set into this one and returns the receiver.
func (s HandleSet) Union(other HandleSet) HandleSet {
	for h := range other {
		s[h] = struct{}{}
	}

	return s
}

// Values returns the handles in deterministic (sorted) order.
func (s HandleSet) Values() []string {
	values := make([]string, 0, len(s))
	for h := range s {
		values = append(values, h)
	}
	sort.Strings(values)

	return values
}

// Len returns the number of handles in the set.
func (s HandleSet) Len() int {
	return len(s)
}
