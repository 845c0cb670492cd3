// Package registry maps exercise coordinates to exercise constructors.
//
// Exercise packages register their parts from init():
//
//	func init() {
//		registry.Register(func() puzzle.Solver[[]int, int] { return Day1Part1{} })
//	}
//
// Register derives the part's identity from the constructed value's type
// name (Day1Part1) and the directory of the file calling Register (y2025).
// RegisterAt is the explicit form for parts that do not follow the naming
// convention.
package registry

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/roach88/advent/internal/puzzle"
)

var (
	// ErrDuplicate means two parts were registered with the same identity.
	ErrDuplicate = errors.New("exercise part already registered")

	// ErrDayNotFound means no part is registered for a year and day.
	ErrDayNotFound = errors.New("no exercise registered for day")

	// ErrPartNotFound means a day has no type for the requested part.
	ErrPartNotFound = errors.New("no exercise registered for part")
)

// Factory constructs a fresh exercise part.
type Factory func() puzzle.Exercise

// Entry is a registered exercise part.
type Entry struct {
	Identity puzzle.Identity
	TypeName string
	New      Factory
}

// Registry holds registered exercise parts.
//
// Thread-safety: all methods are safe for concurrent use, though
// registration normally happens from init().
type Registry struct {
	mu      sync.RWMutex
	entries map[puzzle.Identity]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[puzzle.Identity]Entry)}
}

// Default is the registry used by exercise packages and the CLI.
var Default = New()

// Register adds a part to Default and panics on a configuration error.
func Register[P, A any](newPart func() puzzle.Solver[P, A]) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		panic("registry: cannot determine caller source file")
	}
	if err := Add(Default, file, newPart); err != nil {
		panic(err)
	}
}

// Add registers a part in r, resolving its identity from the type name of
// the value newPart returns and from sourceFile.
func Add[P, A any](r *Registry, sourceFile string, newPart func() puzzle.Solver[P, A]) error {
	sample := newPart()
	id, err := puzzle.IdentityOf(sample, sourceFile)
	if err != nil {
		return err
	}
	return r.insert(Entry{
		Identity: id,
		TypeName: puzzle.TypeNameOf(sample),
		New: func() puzzle.Exercise {
			return puzzle.Adapt(newPart())
		},
	})
}

// RegisterAt registers a part under an explicit identity.
func (r *Registry) RegisterAt(id puzzle.Identity, factory Factory) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.insert(Entry{
		Identity: id,
		TypeName: id.TypeName(),
		New:      factory,
	})
}

func (r *Registry) insert(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[e.Identity]; ok {
		return fmt.Errorf("%w: %s (%s and %s)", ErrDuplicate, e.Identity, existing.TypeName, e.TypeName)
	}
	r.entries[e.Identity] = e
	return nil
}

// Entries returns all registered parts ordered by year, day and part.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Identity, entries[j].Identity
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Part < b.Part
	})
	return entries
}

// Day returns the module holding every part registered for year and day.
func (r *Registry) Day(year, day int) (*Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m := &Module{Year: year, Day: day, types: make(map[string]Entry)}
	for id, e := range r.entries {
		if id.Year == year && id.Day == day {
			m.types[e.TypeName] = e
		}
	}
	if len(m.types) == 0 {
		return nil, fmt.Errorf("%w: y%04d day %d", ErrDayNotFound, year, day)
	}
	return m, nil
}

// Module is the set of parts registered for one day.
type Module struct {
	Year int
	Day  int

	types map[string]Entry // keyed by type name
}

// Parts returns the registered part numbers in ascending order.
func (m *Module) Parts() []int {
	parts := make([]int, 0, len(m.types))
	for _, e := range m.types {
		parts = append(parts, e.Identity.Part)
	}
	sort.Ints(parts)
	return parts
}

// Part returns the entry whose type is named Day<day>Part<part>.
func (m *Module) Part(part int) (Entry, error) {
	name := fmt.Sprintf("Day%dPart%d", m.Day, part)
	e, ok := m.types[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s in y%04d", ErrPartNotFound, name, m.Year)
	}
	return e, nil
}
