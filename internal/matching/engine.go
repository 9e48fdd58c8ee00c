package matching

import (
	"math/rand/v2"

	"github.com/spec-kit/buddy-service/internal/domain"
)

// Shuffler permutes n elements through swap. rand.Shuffle satisfies it.
type Shuffler func(n int, swap func(i, j int))

// SeededShuffler returns a reproducible Shuffler. It is not safe for
// concurrent use; build one per run.
func SeededShuffler(seed uint64) Shuffler {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return rng.Shuffle
}

// Option customizes an Engine.
type Option func(*Engine)

// WithShuffler replaces the default random shuffle.
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		if s != nil {
			e.shuffle = s
		}
	}
}

// Engine pairs roster members into buddies.
type Engine struct {
	shuffle Shuffler
}

// NewEngine builds an engine that shuffles with math/rand/v2 unless told otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{shuffle: rand.Shuffle}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run is the working state of a single Match call.
type run struct {
	people  []domain.Person
	index   domain.PrivilegedIndex
	matched []bool
	results []domain.MatchResult
}

// Match shuffles the roster and pairs it in two greedy phases: privileged
// managers first, then the remaining staff. Results come back in commit order.
// Every person lands in exactly one result.
func (e *Engine) Match(roster *domain.Roster) []domain.MatchResult {
	if roster == nil || len(roster.Persons) == 0 {
		return []domain.MatchResult{}
	}
	people := append([]domain.Person(nil), roster.Persons...)
	e.shuffle(len(people), func(i, j int) {
		people[i], people[j] = people[j], people[i]
	})

	r := &run{
		people:  people,
		index:   roster.Index,
		matched: make([]bool, len(people)),
		results: make([]domain.MatchResult, 0, len(people)),
	}
	r.matchPrivileged()
	r.matchStaff()
	return r.results
}

func (r *run) matchPrivileged() {
	for i, manager := range r.people {
		if !manager.Privileged || r.matched[i] {
			continue
		}
		buddy := -1
		for j, candidate := range r.people {
			if i == j || r.matched[j] {
				continue
			}
			if candidate.Privileged || manager.ResponsibleFor(candidate.Department) {
				continue
			}
			if candidate.Department == domain.PrivilegedGroup {
				continue
			}
			buddy = j
			break
		}
		r.commit(i, buddy)
	}
}

func (r *run) matchStaff() {
	for i := range r.people {
		if r.matched[i] {
			continue
		}
		buddy := r.findStaffBuddy(i, i+1)
		if buddy == -1 {
			buddy = r.findStaffBuddy(i, 0)
		}
		r.commit(i, buddy)
	}
}

// findStaffBuddy scans from start for the first eligible partner of person i.
func (r *run) findStaffBuddy(i, start int) int {
	p := r.people[i]
	for j := start; j < len(r.people); j++ {
		if j == i || r.matched[j] {
			continue
		}
		q := r.people[j]
		if p.Privileged || q.Privileged {
			continue
		}
		if p.Department == q.Department {
			continue
		}
		// Managers are resolved in the first phase, so this only fires when a
		// privileged name is reused by ordinary staff.
		if r.index.Has(p.Department, q.Name) || r.index.Has(q.Department, p.Name) {
			continue
		}
		return j
	}
	return -1
}

func (r *run) commit(i, buddy int) {
	result := domain.MatchResult{Person1: r.people[i].Summary()}
	r.matched[i] = true
	if buddy >= 0 {
		partner := r.people[buddy].Summary()
		result.Person2 = &partner
		r.matched[buddy] = true
	}
	r.results = append(r.results, result)
}
