// Package generator produces synthetic identities, timestamps and identifiers.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

const (
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
	upperAlnum    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nameLength    = 8
	suffixLength  = 6
	maxDaysAgo    = 7
	compactLayout = "20060102150405"
)

// TimestampLayout is the format of synthetic Date header values.
const TimestampLayout = "2006-01-02 15:04:05"

// Departments used in the local part of synthetic addresses.
var Departments = []string{"qa", "test", "dev", "support", "sales", "marketing"}

// Domains used for synthetic addresses.
var Domains = []string{"testcompany.com", "testing.org", "qamail.net", "unittest.io"}

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator produces randomized test metadata.
type Generator struct {
	rnd Source
	now func() time.Time
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithSource returns a Generator using the given randomness and clock.
func NewWithSource(rnd Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// Intn returns a value in [0, n) from the underlying source.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Now returns the current time according to the generator's clock.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Address returns name.department@domain with an 8-letter random name.
// Addresses are not unique across calls.
func (g *Generator) Address() string {
	name := g.randomString(lowerLetters, nameLength)
	department := Departments[g.rnd.Intn(len(Departments))]
	domain := Domains[g.rnd.Intn(len(Domains))]
	return name + "." + department + "@" + domain
}

// RecentTimestamp returns a time up to 7 days, 23 hours and 59 minutes in the past,
// formatted as YYYY-MM-DD HH:MM:SS.
func (g *Generator) RecentTimestamp() string {
	days := g.rnd.Intn(maxDaysAgo + 1)
	hours := g.rnd.Intn(24)
	minutes := g.rnd.Intn(60)
	offset := time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return g.now().Add(-offset).Format(TimestampLayout)
}

// Identity returns a fresh synthetic address paired with a recent timestamp.
func (g *Generator) Identity() model.TestIdentity {
	return model.TestIdentity{
		Address:   g.Address(),
		Timestamp: g.RecentTimestamp(),
	}
}

// TestID returns TEST-<compact timestamp>-<6 uppercase alphanumerics>.
func (g *Generator) TestID() string {
	return "TEST-" + g.now().Format(compactLayout) + "-" + g.randomString(upperAlnum, suffixLength)
}

// BatchID returns BATCH-<compact timestamp>.
func (g *Generator) BatchID() string {
	return "BATCH-" + g.now().Format(compactLayout)
}

func (g *Generator) randomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.rnd.Intn(len(alphabet))])
	}
	return b.String()
}
