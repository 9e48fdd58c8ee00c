package domain

import "time"

// PersonSummary is the exported view of a person inside a match result.
type PersonSummary struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// MatchResult is either a committed pair or a single unmatched person when
// Person2 is nil. Order within a pair carries no meaning.
type MatchResult struct {
	Person1 PersonSummary  `json:"employee1"`
	Person2 *PersonSummary `json:"employee2"`
}

// Paired reports whether the result holds two people.
func (m MatchResult) Paired() bool {
	return m.Person2 != nil
}

// MatchSummary carries the counts shown next to a result list.
type MatchSummary struct {
	TotalPersons int `json:"total_persons"`
	Departments  int `json:"departments"`
	Pairs        int `json:"pairs"`
	Unmatched    int `json:"unmatched"`
}

// Summarize counts pairs and unmatched entries of results.
func Summarize(roster *Roster, results []MatchResult) MatchSummary {
	summary := MatchSummary{}
	if roster != nil {
		summary.TotalPersons = len(roster.Persons)
		summary.Departments = roster.DepartmentCount
	}
	for _, r := range results {
		if r.Paired() {
			summary.Pairs++
		} else {
			summary.Unmatched++
		}
	}
	return summary
}

// MatchRun is one completed matching invocation. The caller owns it; nothing
// retains runs between requests.
type MatchRun struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Seed      *uint64       `json:"seed,omitempty"`
	Summary   MatchSummary  `json:"summary"`
	Results   []MatchResult `json:"results"`
}
