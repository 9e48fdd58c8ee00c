// Package render draws match runs for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/buddy-service/internal/domain"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center)
	missingCardStyle = cardStyle.BorderForeground(lipgloss.Color("208"))
	numberStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle       = lipgloss.NewStyle().Faint(true)
	nameStyle        = lipgloss.NewStyle().Bold(true)
	deptStyle        = lipgloss.NewStyle().Faint(true)
	unmatchedStyle   = lipgloss.NewStyle().Faint(true)
)

const personWidth = 36

// Run writes the stat cards followed by one line per result.
func Run(w io.Writer, run *domain.MatchRun) error {
	if _, err := fmt.Fprintln(w, Summary(run.Summary)); err != nil {
		return err
	}
	for _, m := range run.Results {
		if _, err := fmt.Fprintln(w, Result(m)); err != nil {
			return err
		}
	}
	return nil
}

// Summary renders the counters as cards. The unmatched card only appears when
// somebody is left without a buddy.
func Summary(s domain.MatchSummary) string {
	cards := []string{
		card(cardStyle, s.TotalPersons, "Mitarbeiter"),
		card(cardStyle, s.Departments, "Abteilungen"),
		card(cardStyle, s.Pairs, "Matches"),
	}
	if s.Unmatched > 0 {
		cards = append(cards, card(missingCardStyle, s.Unmatched, "Ohne Buddy"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Result renders a single pair or unmatched entry.
func Result(m domain.MatchResult) string {
	left := person(m.Person1)
	if m.Person2 == nil {
		right := lipgloss.JoinVertical(lipgloss.Left,
			unmatchedStyle.Render("Kein Buddy gefunden"),
			deptStyle.Render("Keine passende Abteilung verfügbar"),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ⚠  ", right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ↔  ", person(*m.Person2))
}

func card(style lipgloss.Style, n int, label string) string {
	return style.Render(lipgloss.JoinVertical(lipgloss.Center,
		numberStyle.Render(fmt.Sprint(n)),
		labelStyle.Render(label),
	))
}

func person(p domain.PersonSummary) string {
	detail := p.Department
	if strings.TrimSpace(p.Email) != "" {
		detail += " • " + p.Email
	}
	return lipgloss.NewStyle().Width(personWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(p.Name),
		deptStyle.Render(detail),
	))
}
