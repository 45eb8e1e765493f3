// Package generator produces a self-consistent synthetic instance of the
// repair-shop schema: twenty entity collections generated in dependency
// order, with every foreign reference resolving to a record from a strictly
// earlier group.
package generator

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"repaircore/internal/observability"
	"repaircore/pkg/domain"
)

// PasswordHasher hashes generated account passwords. Hashing is an external
// concern; the generator only stores the result.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct{ cost int }

func (h bcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Generator holds one run's configuration, RNG stream, samplers, and the
// hint maps built while materializing sample catalogs. It is not safe for
// concurrent use; generation is a single-threaded synchronous pass.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	faker   *gofakeit.Faker
	now     func() time.Time
	log     observability.Logger
	metrics observability.MetricsRecorder
	hasher  PasswordHasher

	contractWeights *WeightedIndex
	accountWeights  *WeightedIndex
	phoneWeights    *WeightedIndex
	positionWeights *WeightedIndex
	vacationChance  *Bernoulli
	contractChance  *Bernoulli
	notOwnerChance  *Bernoulli

	// Hint maps built once when materializing from samples; later groups
	// consult them instead of re-joining catalogs by name.
	roleByPosition    map[uuid.UUID]domain.AccountRole
	priceByKind       map[uuid.UUID]float64
	kindIDByName      map[string]uuid.UUID
	coefByModel       map[uuid.UUID]float64
	priceByService    map[uuid.UUID]float64
	kindNameByService map[uuid.UUID]string
}

// Option configures optional generator collaborators.
type Option func(*Generator)

// WithLogger wires a structured logger. The default discards records.
func WithLogger(log observability.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithMetrics wires a metrics recorder for per-entity timings.
func WithMetrics(rec observability.MetricsRecorder) Option {
	return func(g *Generator) {
		if rec != nil {
			g.metrics = rec
		}
	}
}

// WithClock overrides the time source used for lifecycle metadata.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithPasswordHasher overrides the account password hasher. The default is
// bcrypt at minimum cost; production logins are not derived from generated
// datasets.
func WithPasswordHasher(h PasswordHasher) Option {
	return func(g *Generator) {
		if h != nil {
			g.hasher = h
		}
	}
}

// New validates cfg, builds every weighted sampler up front, and returns a
// ready generator. Malformed weight vectors fail here, before any generation
// starts.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		faker:   gofakeit.New(seed),
		now:     time.Now,
		log:     observability.NopLogger{},
		metrics: observability.NopMetricsRecorder{},
		hasher:  bcryptHasher{cost: bcrypt.MinCost},

		roleByPosition:    make(map[uuid.UUID]domain.AccountRole),
		priceByKind:       make(map[uuid.UUID]float64),
		kindIDByName:      make(map[string]uuid.UUID),
		coefByModel:       make(map[uuid.UUID]float64),
		priceByService:    make(map[uuid.UUID]float64),
		kindNameByService: make(map[uuid.UUID]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	var err error
	if g.contractWeights, err = NewWeightedIndex(cfg.LaborContractWeights); err != nil {
		return nil, err
	}
	if g.accountWeights, err = NewWeightedIndex(cfg.AccountStatusWeights); err != nil {
		return nil, err
	}
	if g.phoneWeights, err = NewWeightedIndex(cfg.PhoneCount); err != nil {
		return nil, err
	}
	positionWeights := make([]int, len(PositionSamples))
	for i, sample := range PositionSamples {
		positionWeights[i] = sample.Weight
	}
	if g.positionWeights, err = NewWeightedIndex(positionWeights); err != nil {
		return nil, err
	}
	if g.vacationChance, err = NewBernoulli(cfg.StaffVacationChance); err != nil {
		return nil, err
	}
	if g.contractChance, err = NewBernoulli(cfg.SupplyContractChance); err != nil {
		return nil, err
	}
	if g.notOwnerChance, err = NewBernoulli(cfg.OrderNotOwnerChance); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns the effective configuration (defaults applied).
func (g *Generator) Config() Config { return g.cfg }

func (g *Generator) meta() domain.MetaTime {
	return domain.MetaAt(g.now().UTC())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
