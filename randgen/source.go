// Package randgen supplies the leaf random-value generators: a seeded
// source wrapping gofakeit, the default selector set, and probabilistic
// nullable selectors.
package randgen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Date bounds for the default time generator. Fixed so two sources with
// the same seed produce identical dates regardless of wall-clock time.
var (
	dateMin = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateMax = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Source is a seeded random-value source. It drives a gofakeit Faker and
// a math/rand generator behind one mutex, so a single Source can serve
// concurrent populate calls.
type Source struct {
	mu    sync.Mutex
	seed  uint64
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewSource builds a Source from seed. Seed zero picks a wall-clock
// seed, making the run non-reproducible.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Source{
		seed:  seed,
		rng:   rand.New(rand.NewSource(int64(seed))),
		faker: gofakeit.New(seed),
	}
}

// Seed returns the seed this source was built from.
func (s *Source) Seed() uint64 { return s.seed }

// IntBetween returns a random int in [min, max], both inclusive.
func (s *Source) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.Intn(max-min+1)
}

// Float64Between returns a random float64 in [min, max).
func (s *Source) Float64Between(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.Float64()*(max-min)
}

// Chance returns true with probability p. Values outside [0, 1] clamp.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64() < p
}

// UUID returns a random UUID drawn from this source's generator, so
// identifier generation stays reproducible under a fixed seed.
func (s *Source) UUID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := uuid.NewRandomFromReader(rngReader{s.rng})
	if err != nil {
		return uuid.Nil
	}

	return id
}

type rngReader struct{ rng *rand.Rand }

func (r rngReader) Read(p []byte) (int, error) { return r.rng.Read(p) }

// Duration returns a random duration between one second and one day.
func (s *Source) Duration() time.Duration {
	return time.Duration(s.IntBetween(1, 24*60*60)) * time.Second
}

// Date returns a random time within the fixed default date bounds.
func (s *Source) Date() time.Time {
	return s.DateBetween(dateMin, dateMax)
}

// DateBetween returns a random time in [start, end].
func (s *Source) DateBetween(start, end time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.DateRange(start, end)
}

// Pick returns one of the supplied options at random.
func (s *Source) Pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.RandomString(options)
}

func (s *Source) Word() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Word()
}

func (s *Source) Sentence(words int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Sentence(words)
}

func (s *Source) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Name()
}

func (s *Source) FirstName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.FirstName()
}

func (s *Source) LastName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.LastName()
}

func (s *Source) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Email()
}

func (s *Source) City() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.City()
}

func (s *Source) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.URL()
}

func (s *Source) Company() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Company()
}

func (s *Source) Phone() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Phone()
}

func (s *Source) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Bool()
}

// Price returns a random price in [min, max].
func (s *Source) Price(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.faker.Price(min, max)
}
