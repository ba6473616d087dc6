package targets

import (
	"aimlab/internal/geom"
	"math/rand"
)

const (
	GameWidth     = 500
	GameHeight    = 500
	DefaultRadius = 15
	DefaultMargin = 20
)

// Store keeps the live targets in insertion order. It is owned by a single
// game loop and is not safe for concurrent use.
type Store struct {
	targets []*Target
	nextID  int
	rng     *rand.Rand
	width   int
	height  int
	margin  int
	radius  float64
}

type Option func(*Store)

// WithRand makes spawn positions reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithBounds overrides the playfield size.
func WithBounds(width, height int) Option {
	return func(s *Store) {
		s.width = width
		s.height = height
	}
}

// WithMargin overrides the spawn margin.
func WithMargin(margin int) Option {
	return func(s *Store) { s.margin = margin }
}

// WithRadius overrides the target radius.
func WithRadius(radius float64) Option {
	return func(s *Store) { s.radius = radius }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		width:  GameWidth,
		height: GameHeight,
		margin: DefaultMargin,
		radius: DefaultRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return s
}

// Add spawns a target at a uniformly random integer position within
// [margin, width-margin] x [margin, height-margin].
func (s *Store) Add(at float64) *Target {
	id := s.nextID
	s.nextID++
	target := &Target{
		ID:        id,
		Center:    geom.Pt(float64(s.randCoord(s.width)), float64(s.randCoord(s.height))),
		Radius:    s.radius,
		SpawnedAt: at,
	}
	s.targets = append(s.targets, target)
	return target
}

func (s *Store) randCoord(extent int) int {
	span := extent - 2*s.margin
	if span < 0 {
		return extent / 2
	}
	return s.margin + s.rng.Intn(span+1)
}

// Place appends a target at an explicit position.
func (s *Store) Place(center geom.Point, at float64) *Target {
	id := s.nextID
	s.nextID++
	target := &Target{ID: id, Center: center, Radius: s.radius, SpawnedAt: at}
	s.targets = append(s.targets, target)
	return target
}

func (s *Store) Get(id int) *Target {
	for _, t := range s.targets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Kill removes the target with the given id and reports whether it existed.
func (s *Store) Kill(id int) bool {
	for i, t := range s.targets {
		if t.ID == id {
			s.remove(i)
			return true
		}
	}
	return false
}

// HitFirst removes and returns the first target, in insertion order, that
// contains p. It returns nil on a miss.
func (s *Store) HitFirst(p geom.Point) *Target {
	for i, t := range s.targets {
		if t.Hit(p) {
			s.remove(i)
			return t
		}
	}
	return nil
}

func (s *Store) remove(i int) {
	copy(s.targets[i:], s.targets[i+1:])
	s.targets[len(s.targets)-1] = nil
	s.targets = s.targets[:len(s.targets)-1]
}

// GetList returns the live targets in insertion order.
func (s *Store) GetList() []*Target {
	targetList := make([]*Target, len(s.targets))
	copy(targetList, s.targets)
	return targetList
}

func (s *Store) Len() int {
	return len(s.targets)
}

func (s *Store) Clear() {
	s.targets = nil
	s.nextID = 1
}
