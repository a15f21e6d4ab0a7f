package generator

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)

// sequence replays fixed draws, wrapping around when exhausted.
type sequence struct {
	values []int
	pos    int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func newSeeded() *Generator {
	return NewWithSource(rand.New(rand.NewSource(42)), func() time.Time { return fixedNow })
}

func TestAddressMatchesPattern(t *testing.T) {
	domains := make([]string, len(Domains))
	for i, d := range Domains {
		domains[i] = regexp.QuoteMeta(d)
	}
	pattern := regexp.MustCompile(`^[a-z]{8}\.(` + strings.Join(Departments, "|") + `)@(` + strings.Join(domains, "|") + `)$`)

	gen := newSeeded()
	first := gen.Address()
	second := gen.Address()
	for _, addr := range []string{first, second} {
		if !pattern.MatchString(addr) {
			t.Fatalf("address %q does not match %s", addr, pattern)
		}
	}
}

func TestAddressDeterministicSource(t *testing.T) {
	gen := NewWithSource(&sequence{values: []int{0, 1, 2, 3, 4, 5, 6, 7, 2, 1}}, func() time.Time { return fixedNow })
	if got := gen.Address(); got != "abcdefgh.dev@testing.org" {
		t.Fatalf("unexpected address %q", got)
	}
}

func TestRecentTimestampWithinWindow(t *testing.T) {
	gen := newSeeded()
	for i := 0; i < 200; i++ {
		ts := gen.RecentTimestamp()
		parsed, err := time.Parse(TimestampLayout, ts)
		if err != nil {
			t.Fatalf("parse %q: %v", ts, err)
		}
		if parsed.After(fixedNow) {
			t.Fatalf("timestamp %s is in the future", ts)
		}
		if fixedNow.Sub(parsed) > 7*24*time.Hour+23*time.Hour+59*time.Minute {
			t.Fatalf("timestamp %s is too old", ts)
		}
	}
}

func TestRecentTimestampMaxOffset(t *testing.T) {
	gen := NewWithSource(&sequence{values: []int{7, 23, 59}}, func() time.Time { return fixedNow })
	if got := gen.RecentTimestamp(); got != "2024-03-07 12:31:45" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestTestIDFormat(t *testing.T) {
	gen := newSeeded()
	id := gen.TestID()
	if !regexp.MustCompile(`^TEST-20240315123045-[A-Z0-9]{6}$`).MatchString(id) {
		t.Fatalf("unexpected test id %q", id)
	}
}

func TestBatchID(t *testing.T) {
	gen := newSeeded()
	if got := gen.BatchID(); got != "BATCH-20240315123045" {
		t.Fatalf("unexpected batch id %q", got)
	}
}

func TestIdentity(t *testing.T) {
	gen := NewWithSource(&sequence{values: []int{0, 1, 2, 3, 4, 5, 6, 7, 2, 1, 1, 2, 3}}, func() time.Time { return fixedNow })
	id := gen.Identity()
	if id.Address != "abcdefgh.dev@testing.org" {
		t.Fatalf("unexpected address %q", id.Address)
	}
	if id.Timestamp != "2024-03-14 10:27:45" {
		t.Fatalf("unexpected timestamp %q", id.Timestamp)
	}
}
